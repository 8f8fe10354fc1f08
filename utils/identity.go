package utils

import (
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/andrewpaige1/galaxymap-api/auth"
	"github.com/andrewpaige1/galaxymap-api/middleware"
	"github.com/andrewpaige1/galaxymap-api/models"
)

// AnonymousName is shown when the identity provider gives us no usable
// display name.
const AnonymousName = "Anonymous User"

// GetIdentity resolves the caller once at the request boundary: first
// from validated Auth0 claims, then from the development session cookie.
// The id falls back from subject to email to "anonymous", the display
// name from name to email to AnonymousName. ok is false for requests
// that carry no credentials at all.
func GetIdentity(r *http.Request) (models.Identity, bool) {
	if claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims); ok {
		var name, email string
		if custom, ok := claims.CustomClaims.(*middleware.CustomClaims); ok && custom != nil {
			email = custom.Email
			name = custom.Name
			if name == "" {
				name = custom.Nickname
			}
		}
		return resolve(claims.RegisteredClaims.Subject, name, email), true
	}

	claims, err := auth.FromCookie(r)
	if err != nil {
		return models.Identity{}, false
	}
	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	return resolve(sub, name, email), true
}

func resolve(id, name, email string) models.Identity {
	if id == "" {
		id = email
	}
	if id == "" {
		id = "anonymous"
	}
	if name == "" {
		name = email
	}
	if name == "" {
		name = AnonymousName
	}
	return models.Identity{ID: id, Name: name}
}
