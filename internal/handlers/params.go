package handlers

import (
	"net/http"
	"strconv"
)

// currentUserID reads the authenticated user id placed in the request
// context by the JWT middleware.
func currentUserID(r *http.Request) int {
	id, _ := r.Context().Value("user_id").(int)
	return id
}

func currentRole(r *http.Request) string {
	role, _ := r.Context().Value("role").(string)
	return role
}

// pathInt parses a :param route segment as an integer.
func pathInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(":" + name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
