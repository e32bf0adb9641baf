package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"daoxanh/internal/app"
	"daoxanh/internal/domain"
)

// spyMailer records dispatches and can be told to fail.
type spyMailer struct {
	sent []domain.Email
	err  error
}

func (m *spyMailer) Send(ctx context.Context, e domain.Email) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, e)
	return "msg_test", nil
}

func validSubmission() app.BookingSubmission {
	return app.BookingSubmission{
		BookingCode:   "DXE123456",
		Name:          "Nguyễn Văn A",
		Email:         "a@example.com",
		Phone:         "+84 961 898 972",
		AdultsCount:   2,
		ChildrenCount: 1,
		ServiceType:   "day-trip",
		ServiceName:   "Trải nghiệm trong ngày",
		PackageID:     "daytrip-a1",
		PackageName:   "Gói A1",
		AddBBQ:        true,
	}
}

func newService(m domain.Mailer) *app.BookingService {
	return app.NewBookingService(domain.DefaultCatalog(), m, "onboarding@resend.dev", "ops@daoxanh.com.vn")
}

func TestSubmit_SendsRecomputedTotal(t *testing.T) {
	mailer := &spyMailer{}
	svc := newService(mailer)

	res, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Suppressed {
		t.Fatalf("human submission marked suppressed")
	}
	// BBQ prices substitute: 2*258000 + 1*209000
	if res.Total != 725000 {
		t.Fatalf("total = %d, want 725000", res.Total)
	}
	if res.BookingCode != "DXE123456" || res.ProviderID != "msg_test" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d mails", len(mailer.sent))
	}
	mail := mailer.sent[0]
	if mail.To[0] != "ops@daoxanh.com.vn" {
		t.Fatalf("to = %v", mail.To)
	}
	if !strings.Contains(mail.Subject, "DXE123456") || !strings.Contains(mail.Subject, "Nguyễn Văn A") {
		t.Fatalf("subject = %q", mail.Subject)
	}
	if !strings.Contains(mail.HTML, "725.000đ") {
		t.Fatalf("rendered total missing from mail body")
	}
}

func TestSubmit_HoneypotSuppressed(t *testing.T) {
	mailer := &spyMailer{}
	svc := newService(mailer)

	sub := validSubmission()
	sub.Website = "http://spam.example"

	res, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("honeypot must look like success, got %v", err)
	}
	if !res.Suppressed {
		t.Fatalf("expected suppression")
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("honeypot submission reached the mailer")
	}
}

func TestSubmit_ValidationRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*app.BookingSubmission)
	}{
		{"no adults", func(s *app.BookingSubmission) { s.AdultsCount = 0 }},
		{"bad email", func(s *app.BookingSubmission) { s.Email = "not-an-email" }},
		{"bad phone", func(s *app.BookingSubmission) { s.Phone = "abc" }},
		{"short phone", func(s *app.BookingSubmission) { s.Phone = "12345" }},
		{"empty name", func(s *app.BookingSubmission) { s.Name = "" }},
		{"team-building not submittable", func(s *app.BookingSubmission) { s.ServiceType = "team-building" }},
		{"missing service name", func(s *app.BookingSubmission) { s.ServiceName = "" }},
		{"oversized notes", func(s *app.BookingSubmission) { s.Notes = strings.Repeat("x", 1001) }},
	}

	for _, c := range cases {
		mailer := &spyMailer{}
		svc := newService(mailer)

		sub := validSubmission()
		c.mutate(&sub)

		_, err := svc.Submit(context.Background(), sub)
		var ve *app.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", c.name, err)
		}
		if len(ve.Details) == 0 {
			t.Fatalf("%s: empty details", c.name)
		}
		if len(mailer.sent) != 0 {
			t.Fatalf("%s: invalid submission reached the mailer", c.name)
		}
	}
}

func TestSubmit_GeneratesCodeWhenMissing(t *testing.T) {
	mailer := &spyMailer{}
	svc := newService(mailer)

	sub := validSubmission()
	sub.BookingCode = ""

	res, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !strings.HasPrefix(res.BookingCode, "DXE") || len(res.BookingCode) != 9 {
		t.Fatalf("generated code %q", res.BookingCode)
	}
	if !strings.Contains(mailer.sent[0].Subject, res.BookingCode) {
		t.Fatalf("subject lacks generated code: %q", mailer.sent[0].Subject)
	}
}

func TestSubmit_ProviderFailureSurfaces(t *testing.T) {
	mailer := &spyMailer{err: errors.New("resend: request rejected")}
	svc := newService(mailer)

	_, err := svc.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatalf("expected dispatch error")
	}
	var ve *app.ValidationError
	if errors.As(err, &ve) {
		t.Fatalf("provider failure misclassified as validation error")
	}
}

func TestSubmit_EscapesUserMarkup(t *testing.T) {
	mailer := &spyMailer{}
	svc := newService(mailer)

	sub := validSubmission()
	sub.Name = `Mr <script>alert("x")</script>`
	sub.Notes = `<img src=x onerror=alert(1)>`

	if _, err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("err: %v", err)
	}
	html := mailer.sent[0].HTML
	if strings.Contains(html, "<script>") || strings.Contains(html, "<img src=x") {
		t.Fatalf("raw user markup leaked into mail body")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup in body")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		0:       "0đ",
		700000:  "700.000đ",
		2378000: "2.378.000đ",
		84000:   "84.000đ",
		999:     "999đ",
	}
	for in, want := range cases {
		if got := app.FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", in, got, want)
		}
	}
}
