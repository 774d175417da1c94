package handlers

import (
	"net/http"

	"github.com/dmarsland/bankist/format"
	"github.com/dmarsland/bankist/models"
)

// GetSession reports the inactivity countdown
// @Summary      Get session
// @Description  Get the remaining inactivity time for the current session, both in seconds and as mm:ss.
// @Tags         session
// @Produce      json
// @Success      200  {object}  Response{data=models.SessionView}
// @Failure      401  {object}  Response{error=string}
// @Router       /session [get]
// @Security     BearerAuth
func GetSession(w http.ResponseWriter, r *http.Request) {
	s := currentSession(r)
	left, err := Sessions.Remaining(s.Token)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, models.SessionView{
		Username:         s.Username,
		RemainingSeconds: int(left.Seconds()),
		Timer:            format.Countdown(left),
	})
}
