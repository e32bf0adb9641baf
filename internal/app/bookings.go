package app

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"daoxanh/internal/domain"
)

// BookingSubmission is the untrusted form payload. No price field exists in
// the schema on purpose: the server recomputes the quote from the catalog.
type BookingSubmission struct {
	BookingCode       string `json:"bookingCode" validate:"max=50"`
	Name              string `json:"name" validate:"required,max=100"`
	Email             string `json:"email" validate:"required,email,max=255"`
	Phone             string `json:"phone" validate:"required,phone"`
	CheckIn           string `json:"checkIn" validate:"max=50"`
	CheckOut          string `json:"checkOut" validate:"max=50"`
	AdultsCount       int    `json:"adultsCount" validate:"min=1,max=100"`
	ChildrenCount     int    `json:"childrenCount" validate:"min=0,max=100"`
	ServiceType       string `json:"serviceType" validate:"required,oneof=combo day-trip stay"`
	ServiceName       string `json:"serviceName" validate:"required,max=200"`
	PackageName       string `json:"packageName" validate:"max=200"`
	PackageSubtitle   string `json:"packageSubtitle" validate:"max=500"`
	PackageID         string `json:"packageId" validate:"max=50"`
	AccommodationType string `json:"accommodationType" validate:"max=100"`
	AddBBQ            bool   `json:"addBBQ"`
	Notes             string `json:"notes" validate:"max=1000"`
	// Website is the honeypot field; humans never see it, so any value
	// marks the submission as automated.
	Website string `json:"website" validate:"max=0"`
}

func (b BookingSubmission) Selection() domain.Selection {
	return domain.Selection{
		ServiceType:       domain.ServiceType(b.ServiceType),
		PackageID:         b.PackageID,
		AccommodationType: b.AccommodationType,
		AddBBQ:            b.AddBBQ,
		AdultsCount:       b.AdultsCount,
		ChildrenCount:     b.ChildrenCount,
		CheckIn:           b.CheckIn,
		CheckOut:          b.CheckOut,
	}
}

// ValidationError carries the field-level messages for a 400 response.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "invalid booking payload: " + strings.Join(e.Details, "; ")
}

var phoneRe = regexp.MustCompile(`^[0-9+\-\s()]{8,20}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	// report json field names, not Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s không được để trống", fe.Field())
	case "email":
		return "Email không hợp lệ"
	case "phone":
		return "Số điện thoại không hợp lệ"
	case "oneof":
		return fmt.Sprintf("%s phải là một trong: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Field() == "adultsCount" {
			return "Cần ít nhất 1 người lớn"
		}
		return fmt.Sprintf("%s tối thiểu là %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s vượt quá giới hạn %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s không hợp lệ", fe.Field())
	}
}

// Result is what a processed submission produces. Suppressed marks a
// honeypot catch: outwardly a success, inwardly a no-op.
type Result struct {
	BookingCode string
	ProviderID  string
	Total       int64
	Suppressed  bool
}

type BookingService struct {
	catalog  domain.Catalog
	mailer   domain.Mailer
	from     string
	inbox    string
	validate *validator.Validate
}

func NewBookingService(cat domain.Catalog, m domain.Mailer, from, inbox string) *BookingService {
	return &BookingService{
		catalog:  cat,
		mailer:   m,
		from:     from,
		inbox:    inbox,
		validate: newValidator(),
	}
}

// Submit runs the trust pipeline for one booking: honeypot, schema
// validation, server-side quote recomputation, notification render and
// dispatch. Each step is a hard gate; nothing is retried here.
func (s *BookingService) Submit(ctx context.Context, sub BookingSubmission) (Result, error) {
	if sub.Website != "" {
		// Answer like a success so the bot learns nothing; send nothing.
		log.Warn().Str("code", sub.BookingCode).Msg("honeypot triggered, dropping submission")
		return Result{Suppressed: true}, nil
	}

	if err := s.validate.Struct(sub); err != nil {
		var details []string
		if ves, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ves {
				details = append(details, fieldMessage(fe))
			}
		} else {
			details = append(details, err.Error())
		}
		return Result{}, &ValidationError{Details: details}
	}

	if sub.BookingCode == "" {
		sub.BookingCode = domain.NewBookingCode()
	}

	total := domain.ComputeTotal(sub.Selection(), s.catalog)

	html, err := renderNotification(sub, total)
	if err != nil {
		return Result{}, fmt.Errorf("render notification: %w", err)
	}

	id, err := s.mailer.Send(ctx, domain.Email{
		From:    s.from,
		To:      []string{s.inbox},
		Subject: fmt.Sprintf("[Đặt dịch vụ mới] %s - %s", sub.BookingCode, sub.Name),
		HTML:    html,
	})
	if err != nil {
		return Result{}, fmt.Errorf("dispatch notification: %w", err)
	}

	log.Info().
		Str("code", sub.BookingCode).
		Str("service", sub.ServiceType).
		Int64("total", total).
		Str("provider_id", id).
		Msg("booking notification sent")
	return Result{BookingCode: sub.BookingCode, ProviderID: id, Total: total}, nil
}
