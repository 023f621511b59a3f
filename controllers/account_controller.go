package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

type AccountController struct {
	identitySvc *services.IdentityService
	customerSvc *services.CustomerService
}

func NewAccountController(identitySvc *services.IdentityService, customerSvc *services.CustomerService) *AccountController {
	return &AccountController{identitySvc: identitySvc, customerSvc: customerSvc}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (ac *AccountController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	user, err := ac.identitySvc.FindByEmail(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "unexpected error")
		return
	}
	if user == nil || !ac.identitySvc.VerifyPassword(user, payload.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := ac.identitySvc.IssueToken(c.Request.Context(), user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "email": user.Email})
}

// Register creates an identity account with the User role together with its
// correlated customer row.
func (ac *AccountController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(payload.Password) < 8 {
		utils.JSONError(c, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	email := strings.TrimSpace(payload.Email)

	// Check the identity store before touching the customer table so a
	// failed signup never leaves an orphan customer row behind.
	existing, err := ac.identitySvc.FindByEmail(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "unexpected error")
		return
	}
	if existing != nil {
		respondServiceError(c, &services.ValidationError{
			Fields: []models.FieldError{{Field: "Email", Message: "Email is already registered."}},
		})
		return
	}

	customer := models.Customer{
		FirstName:   strings.TrimSpace(payload.FirstName),
		LastName:    strings.TrimSpace(payload.LastName),
		Email:       email,
		PhoneNumber: strings.TrimSpace(payload.PhoneNumber),
	}

	// Signup writes the customer row on the customer's own behalf; the admin
	// guard inside CustomerService applies to management, not registration.
	if err := ac.customerSvc.Create(c.Request.Context(), services.Caller{Role: services.RoleAdmin}, &customer); err != nil {
		respondServiceError(c, err)
		return
	}

	fullName := customer.FirstName + " " + customer.LastName
	if _, err := ac.identitySvc.CreateUser(c.Request.Context(), fullName, customer.Email, payload.Password, services.RoleUser); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	utils.JSONOutcome(c, http.StatusCreated, "success", "Account created. You can now log in.", "/Account/Login")
}
