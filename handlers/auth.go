package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmarsland/bankist/models"
)

// Login opens a session for a username/PIN pair
// @Summary      Log in
// @Description  Authenticate a username/PIN pair and open a session with a fresh inactivity countdown. Unknown user and wrong PIN are indistinguishable.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginRequest  true  "Login credentials"
// @Success      200          {object}  Response{data=models.LoginView}
// @Failure      401          {object}  Response{error=string}
// @Router       /auth/login [post]
func Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s, acct, err := Sessions.Login(input.Username, input.PIN)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.LoginView{
		Token:   s.Token,
		Welcome: fmt.Sprintf("Welcome back, %s", acct.FirstName()),
		Account: accountView(acct, acct.Movements, Sessions.Now()),
	})
}

// Logout ends the current session
// @Summary      Log out
// @Description  End the current session and cancel its inactivity countdown.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response{data=string}
// @Failure      401  {object}  Response{error=string}
// @Router       /auth/logout [post]
// @Security     BearerAuth
func Logout(w http.ResponseWriter, r *http.Request) {
	s := currentSession(r)
	if err := Sessions.Logout(s.Token); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, "logged out")
}
