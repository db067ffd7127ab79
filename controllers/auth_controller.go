package controllers

import (
	"regexp"
	"strings"

	"materials-backend/models"
	"materials-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles user registration and login
type AuthController struct {
	DB *gorm.DB
}

// NewAuthController creates a new AuthController
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID uint   `json:"company_id"` // optional, defaults to the default company
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the shared auth response shape
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    struct {
		ID        uint   `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		CompanyID uint   `json:"company_id"`
	} `json:"user,omitempty"`
}

// Register creates a new user account and issues a token
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if err := ac.validateRegisterRequest(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	var existingUser models.User
	if err := ac.DB.Where("email = ?", strings.ToLower(req.Email)).First(&existingUser).Error; err == nil {
		return c.Status(409).JSON(AuthResponse{
			Success: false,
			Message: "A user with this email already exists",
		})
	}

	companyID := req.CompanyID
	if companyID == 0 {
		companyID, _ = models.DefaultCompanyID(ac.DB)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to create user",
		})
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashedPassword,
		CompanyID:    companyID,
		IsActive:     true,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to create user",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.CompanyID)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to issue token",
		})
	}

	return c.Status(201).JSON(authResponse("User registered successfully", token, user))
}

// Login checks credentials and issues a token
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if !ac.isValidEmail(req.Email) {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Invalid email format",
		})
	}
	if req.Password == "" {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Password is required",
		})
	}

	var user models.User
	if err := ac.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	if !user.IsActive {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Message: "Account is disabled",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.CompanyID)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to issue token",
		})
	}

	return c.JSON(authResponse("Login successful", token, user))
}

func (ac *AuthController) validateRegisterRequest(req *RegisterRequest) error {
	if req.Name == "" {
		return fiber.NewError(400, "Name is required")
	}
	if len(req.Name) < 2 || len(req.Name) > 50 {
		return fiber.NewError(400, "Name must be between 2 and 50 characters")
	}
	if !ac.isValidEmail(req.Email) {
		return fiber.NewError(400, "Invalid email format")
	}
	if len(req.Password) < 6 {
		return fiber.NewError(400, "Password must be at least 6 characters")
	}
	return nil
}

func (ac *AuthController) isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func authResponse(message, token string, user models.User) AuthResponse {
	resp := AuthResponse{
		Success: true,
		Message: message,
		Token:   token,
	}
	resp.User.ID = user.ID
	resp.User.Name = user.Name
	resp.User.Email = user.Email
	resp.User.CompanyID = user.CompanyID
	return resp
}
