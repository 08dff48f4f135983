package cache

// Cache keys for the read endpoints. Content keys are invalidated as a
// group whenever an admin updates a record.
const (
	KeyContentAll        = "content:all"
	KeyContentSectionFmt = "content:section:%s"
	KeyProjectsAll       = "projects:all"
	KeyBlogAll           = "blog:all"
)
