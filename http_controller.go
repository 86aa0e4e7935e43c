package crewauth

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest is the JSON payload of the login route.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// TokenResponse is the success body of the login route.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthControllerRoutes struct {
	Login string
}

// AuthController exposes the login flow over HTTP.
type AuthController struct {
	Logger Logger
	Auther Authenticator
	Routes *AuthControllerRoutes
}

type AuthControllerOption func(*AuthController) *AuthController

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

func WithLoginRoute(path string) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Routes.Login = path
		return c
	}
}

func NewAuthController(auther Authenticator, opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Auther: auther,
		Routes: &AuthControllerRoutes{
			Login: "/api/auth/login",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	return c
}

// RegisterAuthRoutes mounts the login route on a fiber app.
func RegisterAuthRoutes(app *fiber.App, auther Authenticator, opts ...AuthControllerOption) *AuthController {
	controller := NewAuthController(auther, opts...)
	app.Post(controller.Routes.Login, controller.LoginPost).Name("sign-in.post")
	return controller
}

// LoginPost handles POST {email, password} and returns a bearer token.
// Credential failures are a generic 401; only payload shape errors get a
// 400 with detail, since those reveal nothing about stored accounts.
func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Debug("Login payload parse error", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "invalid request body",
			"validation": err.Error(),
		})
	}

	token, err := a.Auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			a.Logger.Error("Login error", "error", err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid credentials",
		})
	}

	return c.JSON(TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
