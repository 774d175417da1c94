package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dmarsland/bankist/models"
)

// GetAccount returns the authenticated account view
// @Summary      Get account
// @Description  Get the current account: rendered ledger rows, balance, and summary totals. Reading does not reset the countdown.
// @Tags         account
// @Produce      json
// @Success      200  {object}  Response{data=models.AccountView}
// @Failure      401  {object}  Response{error=string}
// @Router       /account [get]
// @Security     BearerAuth
func GetAccount(w http.ResponseWriter, r *http.Request) {
	s := currentSession(r)
	acct, err := Sessions.Account(s.Token)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, accountView(acct, acct.Movements, Sessions.Now()))
}

// ListMovements returns rendered ledger rows
// @Summary      List movements
// @Description  Get the ledger rows in render order. With sorted=true the rows are ordered by value over a copy; the ledger itself is never reordered.
// @Tags         account
// @Produce      json
// @Param        sorted  query     bool  false  "Sort by value ascending before rendering"
// @Success      200     {object}  Response{data=[]models.MovementRow}
// @Failure      401     {object}  Response{error=string}
// @Router       /account/movements [get]
// @Security     BearerAuth
func ListMovements(w http.ResponseWriter, r *http.Request) {
	s := currentSession(r)
	sorted := r.URL.Query().Get("sorted") == "true"

	acct, err := Sessions.Account(s.Token)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	movs, err := Sessions.Movements(s.Token, sorted)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, movementRows(acct, movs, Sessions.Now()))
}

// Transfer moves money to another account
// @Summary      Transfer
// @Description  Transfer a positive amount to another username. Succeeds only if the balance covers it and the recipient is a different, existing account. Success resets the inactivity countdown.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        transfer  body      models.TransferRequest  true  "Recipient and amount"
// @Success      200       {object}  Response{data=models.AccountView}
// @Failure      400       {object}  Response{error=string}
// @Failure      404       {object}  Response{error=string}
// @Failure      409       {object}  Response{error=string}
// @Router       /account/transfers [post]
// @Security     BearerAuth
func Transfer(w http.ResponseWriter, r *http.Request) {
	var input models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s := currentSession(r)
	if err := Sessions.Transfer(s.Token, input.To, input.ParsedAmount()); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}

	acct, err := Sessions.Account(s.Token)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, accountView(acct, acct.Movements, Sessions.Now()))
}

// RequestLoan schedules a loan deposit
// @Summary      Request loan
// @Description  Request a loan. The amount is floored to a whole unit and granted only if some existing movement covers a tenth of it. The deposit lands after a short processing delay, and only if the session is still live.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        loan  body      models.LoanRequest  true  "Requested amount"
// @Success      202   {object}  Response{data=models.LoanView}
// @Failure      422   {object}  Response{error=string}
// @Router       /account/loans [post]
// @Security     BearerAuth
func RequestLoan(w http.ResponseWriter, r *http.Request) {
	var input models.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s := currentSession(r)
	granted, err := Sessions.RequestLoan(s.Token, input.ParsedAmount())
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, models.LoanView{
		Amount: granted.String(),
		Status: "processing",
	})
}

// CloseAccount permanently deletes the account
// @Summary      Close account
// @Description  Permanently remove the current account after re-confirming its username and PIN, and end its sessions. There is no undo.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.CloseRequest  true  "Confirmation credentials"
// @Success      200          {object}  Response{data=string}
// @Failure      401          {object}  Response{error=string}
// @Router       /account/close [post]
// @Security     BearerAuth
func CloseAccount(w http.ResponseWriter, r *http.Request) {
	var input models.CloseRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s := currentSession(r)
	if err := Sessions.CloseAccount(s.Token, input.Username, input.PIN); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, "account closed")
}
