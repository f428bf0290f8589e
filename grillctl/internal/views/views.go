// Package views holds the page-level state behind each screen. Views own
// their lists, refetch after a successful change, and turn every failure
// into a fixed message for the user while logging the cause.
package views

import (
	"errors"
	"log"
	"net/http"

	"mikes-grill/grillctl/internal/api"
	"mikes-grill/grillctl/internal/session"
)

// Message is a failure the user is shown verbatim.
type Message string

func (m Message) Error() string { return string(m) }

const (
	MsgMenuLoad             Message = "Failed to load menu items. Please try again later."
	MsgMenuSave             Message = "Failed to save menu item."
	MsgMenuDelete           Message = "Failed to delete menu item."
	MsgChooseCategory       Message = "Please choose a category."
	MsgNameRequired         Message = "Please enter a name."
	MsgCategoriesLoad       Message = "Failed to load categories."
	MsgCategorySave         Message = "Failed to save category."
	MsgHoursLoad            Message = "Failed to load hours."
	MsgHoursSave            Message = "Failed to save hours."
	MsgUnknownDay           Message = "No such day."
	MsgSettingsLoad         Message = "Failed to load site settings."
	MsgHeroSave             Message = "Failed to update hero image."
	MsgNoImageChosen        Message = "Choose an image first."
	MsgImageOpen            Message = "Could not open that image."
	MsgContactsLoad         Message = "Failed to load contact messages."
	MsgContactDelete        Message = "Failed to delete message."
	MsgSummaryLoad          Message = "Failed to load inbox summary."
	MsgUsersLoad            Message = "Failed to fetch users."
	MsgUserCreate           Message = "Failed to create user."
	MsgUserDelete           Message = "Failed to delete user."
	MsgUsernameTaken        Message = "That username is already taken."
	MsgPasswordTooShort     Message = "Password must be at least 8 characters."
	MsgSelfDelete           Message = "You cannot delete the account you are logged in with."
	MsgCredentialsRequired  Message = "Please enter your username and password."
	MsgInvalidCredentials   Message = "Invalid credentials. Please try again."
	MsgTooManyAttempts      Message = "Too many failed attempts. Please wait and try again."
	MsgLoginFailed          Message = "Login failed. Please try again later."
	MsgHomeLoad             Message = "Failed to load restaurant information."
	MsgContactFieldsMissing Message = "Please fill in your name, email and message."
	MsgContactEmailInvalid  Message = "Please enter a valid email address."
	MsgContactSend          Message = "Failed to send message. Please try again."
)

const MinPasswordLength = 8

// ErrCancelled is returned when the user declines a confirmation; nothing was sent.
var ErrCancelled = errors.New("cancelled")

type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// fail maps err onto what the user sees. A missing or rejected session
// becomes session.ErrNotLoggedIn so callers can send the user to login.
func fail(err error, msg Message) error {
	if errors.Is(err, session.ErrNotLoggedIn) || api.IsStatus(err, http.StatusUnauthorized) {
		return session.ErrNotLoggedIn
	}
	log.Printf("ERROR: %s: %v", msg, err)
	return msg
}
