package cli

import (
	"context"
	"os"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
	"github.com/brainstorm-app/brainstorm/internal/common"
)

// promptDefault asks for a value, showing the current one; an empty answer
// keeps it.
func (a *App) promptDefault(prompt, current string) (string, error) {
	v, err := getSimpleText(a.reader, prompt+" ["+current+"]", os.Stdout)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// Profile edits the current profile. Fields default to their stored
// values; leaving the password empty keeps it unchanged.
func (a *App) Profile(ctx context.Context) error {
	current, err := a.auth.CurrentUser(ctx)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}

	upd := models.ProfileUpdate{
		Skills:    current.Skills,
		Interests: current.Interests,
	}

	if upd.Username, err = a.promptDefault("Username", current.Username); err != nil {
		return err
	}
	if upd.Email, err = a.promptDefault("Email", current.Email); err != nil {
		return err
	}
	if upd.Name, err = a.promptDefault("Full name", current.Name); err != nil {
		return err
	}
	if upd.Bio, err = a.promptDefault("Bio", current.Bio); err != nil {
		return err
	}

	skills, err := GetList(a.reader, "Skills", os.Stdout)
	if err != nil {
		return err
	}
	if skills != nil {
		upd.Skills = skills
	}
	interests, err := GetList(a.reader, "Interests", os.Stdout)
	if err != nil {
		return err
	}
	if interests != nil {
		upd.Interests = interests
	}

	password, err := getPassword(os.Stdout, "New password (empty to keep)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var confirm []byte
	if len(password) > 0 {
		confirm, err = getPassword(os.Stdout, "Confirm new password")
		if err != nil {
			return err
		}
		defer common.WipeByteArray(confirm)
	}
	upd.Password = string(password)

	user, err := a.auth.UpdateProfile(ctx, upd, string(confirm))
	if err != nil {
		reportError(err)
		return err
	}

	a.username = user.Username
	printlnFn("Profile updated.")
	return nil
}
