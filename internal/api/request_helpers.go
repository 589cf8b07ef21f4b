package api

import (
	"net/http"

	"github.com/colis-app/colis-api/internal/api/shared"
	"github.com/google/uuid"
)

// userIDParam is the route parameter naming the target user.
const userIDParam = "id"

// decodeAndValidate decodes the JSON body into v and validates it, writing a
// 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		respondError(w, r, err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		respondError(w, r, err)
		return false
	}
	return true
}

// pathUserID extracts the {id} route parameter. The ownership guard has
// already validated it on guarded routes; the check here covers direct use.
func pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := shared.PathUUID(r, userIDParam)
	if err != nil {
		respondError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}
