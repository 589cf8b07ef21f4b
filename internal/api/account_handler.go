package api

import (
	"net/http"

	"github.com/colis-app/colis-api/internal/api/shared"
	"github.com/colis-app/colis-api/internal/service"
)

// AccountHandler serves /users/{id}/account.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Get returns the account of the user, or 404 when it has none.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newAccountResponse(account))
}

// Update merges the request body onto the account.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.accountService.UpdateAccount(r.Context(), userID, req.ToPatch())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newAccountResponse(account))
}

// Delete removes the account.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), userID); err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
