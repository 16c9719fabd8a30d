package cli

import (
	"context"
	"errors"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/api"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
)

func (a *App) Register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if err := ValidateUsername(username); err != nil {
		a.notifier.Notify(err.Error(), SeverityWarning)
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		a.notifier.Notify(err.Error(), SeverityWarning)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if err := ValidatePassword(password); err != nil {
		a.notifier.Notify(err.Error(), SeverityWarning)
		return
	}

	interests, err := GetList(a.reader, "Enter interests (comma-separated, optional)", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	if err := a.auth.Register(ctx, username, email, password, interests); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify("Registration submitted. Check your email for the verification code, then run 'verify'.", SeveritySuccess)
}

func (a *App) Verify(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		a.notifier.Notify(err.Error(), SeverityWarning)
		return
	}

	otp, err := GetSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if otp == "" {
		a.notifier.Notify("verification code is required", SeverityWarning)
		return
	}

	if err := a.auth.VerifyOTP(ctx, email, otp); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify("Email verified, you can now login.", SeveritySuccess)
}

func (a *App) Resend(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		a.notifier.Notify(err.Error(), SeverityWarning)
		return
	}

	if err := a.auth.ResendOTP(ctx, email); err != nil {
		a.fail(ctx, err)
		return
	}
	a.notifier.Notify("Verification code resent.", SeveritySuccess)
}

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		a.notifier.Notify(err.Error(), SeverityWarning)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if err := ValidatePassword(password); err != nil {
		a.notifier.Notify(err.Error(), SeverityWarning)
		return
	}

	cred, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			a.notifier.Notify("cannot reach the server, check your connection and try again", SeverityError)
		} else {
			a.fail(ctx, err)
		}
		return
	}

	a.cred = cred
	a.notifier.Notify("Logged in as "+cred.DisplayName(), SeveritySuccess)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.fail(ctx, err)
		return
	}
	a.cred = models.Credential{}
	a.notifier.Notify("Logged out", SeverityInfo)
}

func (a *App) WhoAmI(ctx context.Context) {
	if !a.isLoggedIn() {
		a.notifier.Notify("not logged in", SeverityInfo)
		return
	}

	msg := a.cred.DisplayName()
	if info, err := a.auth.TokenInfo(a.cred.Token); err == nil && !info.ExpiresAt.IsZero() {
		msg += " (token expires " + info.ExpiresAt.Local().Format("2006-01-02 15:04") + ")"
	}
	a.notifier.Notify(msg, SeverityInfo)
}
