package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/orgsites/federation/platform/go/tenant"
)

// Domain sentinel errors.
var (
	ErrNotFound     = errors.New("registration session not found")
	ErrSubmitted    = errors.New("registration session already submitted")
	ErrUnknownField = errors.New("unknown registration field")
)

// Draft field names. They double as the keys of the validation error set.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldMembershipType = "membershipType"
	FieldMessage        = "message"
)

// MembershipType selects between the two signup flavors.
type MembershipType string

const (
	MembershipMember    MembershipType = "member"
	MembershipVolunteer MembershipType = "volunteer"
)

// State is the form session lifecycle. Editing is the initial state and
// the only one edits are accepted in; Submitted is terminal, there is no
// transition back short of discarding the session and starting over.
type State string

const (
	StateEditing   State = "editing"
	StateSubmitted State = "submitted"
)

// Draft holds the in-progress form values. It is owned exclusively by its
// session and discarded when the session ends.
type Draft struct {
	Name           string
	Email          string
	Phone          string
	TenantID       tenant.ID
	MembershipType MembershipType
	Message        string
}

// Snapshot is the only data that survives into the terminal state; it
// feeds the confirmation message.
type Snapshot struct {
	Name  string
	Email string
}

// Session is one in-progress registration form.
type Session struct {
	ID       uuid.UUID
	State    State
	Draft    Draft
	Errors   map[string]string
	Snapshot *Snapshot
}

// Repository stores form sessions for the duration of a visit. Submitted
// drafts are never persisted anywhere beyond this.
type Repository interface {
	Create(ctx context.Context, s Session) (Session, error)
	Get(ctx context.Context, id uuid.UUID) (Session, error)
	Update(ctx context.Context, s Session) (Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service drives the registration form state machine. Submission is a
// purely local transition; no network call, queue or storage is involved.
type Service interface {
	Start(ctx context.Context, tenantID tenant.ID) (Session, error)
	Get(ctx context.Context, id uuid.UUID) (Session, error)
	EditField(ctx context.Context, id uuid.UUID, field, value string) (Session, error)
	Submit(ctx context.Context, id uuid.UUID) (Session, error)
	Discard(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// New constructs a registration Service backed by the provided repository.
func New(r Repository) Service {
	if r == nil {
		panic("registration repository is required")
	}
	return &service{repo: r}
}

// Start opens a fresh session stamped with the active tenant id. The
// membership type defaults to member until changed.
func (s *service) Start(ctx context.Context, tenantID tenant.ID) (Session, error) {
	session := Session{
		ID:    uuid.New(),
		State: StateEditing,
		Draft: Draft{
			TenantID:       tenantID,
			MembershipType: MembershipMember,
		},
		Errors: map[string]string{},
	}
	return s.repo.Create(ctx, session)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Session, error) {
	return s.repo.Get(ctx, id)
}

// EditField sets one draft field and clears that field's validation error
// immediately, independent of any re-validation; the message disappears as
// soon as the visitor starts correcting the field.
func (s *service) EditField(ctx context.Context, id uuid.UUID, field, value string) (Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if session.State == StateSubmitted {
		return Session{}, ErrSubmitted
	}

	switch field {
	case FieldName:
		session.Draft.Name = value
	case FieldEmail:
		session.Draft.Email = value
	case FieldPhone:
		session.Draft.Phone = value
	case FieldMessage:
		session.Draft.Message = value
	case FieldMembershipType:
		mt := MembershipType(value)
		if mt != MembershipMember && mt != MembershipVolunteer {
			return Session{}, fmt.Errorf("%w: membership type %q", ErrUnknownField, value)
		}
		session.Draft.MembershipType = mt
	default:
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	delete(session.Errors, field)

	return s.repo.Update(ctx, session)
}

// Submit runs the full validation batch. On failure the error set is
// replaced wholesale with exactly the failing fields and the session stays
// in Editing; on success the session becomes Submitted with a snapshot of
// name and email. Submitting an already submitted session returns it
// unchanged.
func (s *service) Submit(ctx context.Context, id uuid.UUID) (Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if session.State == StateSubmitted {
		return session, nil
	}

	errs := Validate(session.Draft)
	if len(errs) > 0 {
		session.Errors = errs
		return s.repo.Update(ctx, session)
	}

	session.State = StateSubmitted
	session.Errors = map[string]string{}
	session.Snapshot = &Snapshot{
		Name:  session.Draft.Name,
		Email: session.Draft.Email,
	}
	return s.repo.Update(ctx, session)
}

// Discard drops the session; navigating away from the form simply forgets
// its state.
func (s *service) Discard(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Validate runs the submit-time batch over a draft and returns the full
// error set keyed by field name. Fields that pass are absent. The result
// depends only on the draft, so repeated runs over an unchanged draft are
// identical.
func Validate(d Draft) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs[FieldName] = "Name is required"
	} else if utf8.RuneCountInString(name) < 2 {
		errs[FieldName] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(d.Email) {
		errs[FieldEmail] = "Please enter a valid email address"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs[FieldPhone] = "Phone number is required"
	} else if digits := nonDigitPattern.ReplaceAllString(d.Phone, ""); len(digits) != 10 {
		errs[FieldPhone] = "Please enter a valid 10-digit phone number"
	}

	return errs
}
