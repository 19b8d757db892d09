package domain

// User represents an author registered with the blog.
//
// ID is assigned by the store on first save; zero means the user has not
// been persisted yet. Description is optional and stays nil when absent.
type User struct {
	ID          int64
	Login       string
	Firstname   string
	Lastname    string
	Description *string
}
