package user

// UserLoginDTO is the login request body.
type UserLoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRegisterDTO carries the multipart form fields of a registration.
// The optional image file is handled separately by the controller.
type UserRegisterDTO struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	Location string `form:"location"`
	Phone    string `form:"phone"`
	Address  string `form:"address"`
	Bio      string `form:"bio"`
	Skills   string `form:"skills"`
}

// RatingDTO is the body of a rating submission.
type RatingDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
