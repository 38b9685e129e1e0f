package application

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/internal/domain/entity"
	repo "github.com/oksasatya/go-directory-portal/internal/domain/repository"
	"github.com/oksasatya/go-directory-portal/internal/infrastructure/kvstore"
	"github.com/oksasatya/go-directory-portal/pkg/mailer"
	"github.com/oksasatya/go-directory-portal/pkg/validation"
)

const summaryFixErrors = "Please fix the errors above"

var registerMessages = map[string]string{
	"name":     "Please enter a valid name (2-50 characters, letters only)",
	"username": "Username must be 3-20 characters (letters, numbers, underscores)",
	"email":    "Please enter a valid email address",
	"password": "Password must contain at least 8 characters, one uppercase, one lowercase, one number and one special character",
	"confirm":  "Passwords do not match",
}

var loginMessages = map[string]string{
	"email":    "Please enter a valid email address",
	"password": "Password must be at least 8 characters",
}

// JobPublisher enqueues background jobs; satisfied by helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AccountIndexer mirrors registered accounts into a search index.
type AccountIndexer interface {
	IndexAccount(ctx context.Context, a entity.AccountSummary) error
	SearchAccounts(ctx context.Context, q string, size int) ([]entity.AccountSummary, error)
}

type AuthService struct {
	Accounts repo.AccountRepository
	Store    kvstore.Store
	Validate *validator.Validate
	Logger   *logrus.Logger

	// Optional collaborators; nil disables them.
	Jobs    JobPublisher
	Indexer AccountIndexer
}

func NewAuthService(accounts repo.AccountRepository, store kvstore.Store, logger *logrus.Logger, jobs JobPublisher, indexer AccountIndexer) *AuthService {
	return &AuthService{
		Accounts: accounts,
		Store:    store,
		Validate: validation.New(),
		Logger:   logger,
		Jobs:     jobs,
		Indexer:  indexer,
	}
}

type RegisterInput struct {
	Name     string `json:"name" form:"name" validate:"personname"`
	Username string `json:"username" form:"username" validate:"handle"`
	Email    string `json:"email" form:"email" validate:"looseemail"`
	Password string `json:"password" form:"password" validate:"strongpwd"`
	Confirm  string `json:"confirm" form:"confirm" validate:"eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"looseemail"`
	Password string `json:"password" form:"password" validate:"pwd"`
}

// Session is what a client holds after login or registration.
type Session struct {
	Token entity.AuthToken `json:"token"`
	User  *entity.Account  `json:"user,omitempty"`
}

// NewSession is the session a successful login or registration opens.
func NewSession(a *entity.Account) *Session {
	return &Session{Token: entity.AuthToken{UserID: a.ID}, User: a}
}

// Public is the session with the password stripped from the snapshot.
func (s Session) Public() Session {
	if s.User != nil {
		s.User = s.User.Redacted()
	}
	return s
}

func (s *AuthService) scoped(clientID string) kvstore.Store {
	return kvstore.NewScoped(s.Store, clientID)
}

// fieldErrors runs struct validation and maps failures to the given messages.
func (s *AuthService) fieldErrors(in any, messages map[string]string) map[string]string {
	return validation.FieldMessages(s.Validate.Struct(in), messages)
}

// Register validates the input against the stored collection, appends a new
// account, persists the whole collection and opens a session for clientID.
func (s *AuthService) Register(ctx context.Context, clientID string, in RegisterInput) (*entity.Account, error) {
	in.Name = validation.TrimSpace(in.Name)
	in.Username = validation.TrimSpace(in.Username)
	in.Email = validation.TrimSpace(in.Email)

	var created entity.Account
	err := s.Accounts.Mutate(ctx, func(accounts []entity.Account) ([]entity.Account, error) {
		fields := s.fieldErrors(in, registerMessages)
		if _, bad := fields["username"]; !bad && entity.UsernameTaken(accounts, in.Username) {
			fields["username"] = "Username already taken"
		}
		if _, bad := fields["email"]; !bad && entity.EmailTaken(accounts, in.Email) {
			fields["email"] = "Email already registered"
		}
		if len(fields) > 0 {
			return nil, &ValidationError{Fields: fields, Summary: summaryFixErrors}
		}

		created = entity.Account{
			ID:       entity.NextAccountID(accounts),
			Name:     in.Name,
			Username: in.Username,
			Email:    in.Email,
			Password: in.Password,
		}
		return append(accounts, created), nil
	})
	if err != nil {
		return nil, err
	}

	s.startSession(ctx, clientID, created)
	registrations.Add(1)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": created.ID, "username": created.Username}).Info("account registered")
	}
	s.announce(ctx, created)
	return &created, nil
}

// Login checks format, then looks the account up by email (first match),
// then compares the password verbatim.
func (s *AuthService) Login(ctx context.Context, clientID string, in LoginInput) (*entity.Account, error) {
	in.Email = validation.TrimSpace(in.Email)

	if fields := s.fieldErrors(in, loginMessages); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	acct, ok := s.Accounts.GetByEmail(ctx, in.Email)
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{"email": "Email not registered"}, Cause: ErrEmailNotRegistered}
	}
	if acct.Password != in.Password {
		return nil, &ValidationError{Fields: map[string]string{"password": "Incorrect password"}, Cause: ErrIncorrectPassword}
	}

	s.startSession(ctx, clientID, *acct)
	logins.Add(1)
	return acct, nil
}

// Logout clears the token and the current-user snapshot.
func (s *AuthService) Logout(ctx context.Context, clientID string) {
	st := s.scoped(clientID)
	st.Remove(ctx, kvstore.KeyAuthToken)
	st.Remove(ctx, kvstore.KeyCurrentUser)
}

// HasToken reports whether the client holds any auth token.
func (s *AuthService) HasToken(ctx context.Context, clientID string) bool {
	raw, ok := s.scoped(clientID).Get(ctx, kvstore.KeyAuthToken)
	return ok && raw != ""
}

// Session returns the client's token and current-user snapshot.
func (s *AuthService) Session(ctx context.Context, clientID string) (*Session, bool) {
	st := s.scoped(clientID)
	var sess Session
	if !kvstore.GetJSON(ctx, st, s.Logger, kvstore.KeyAuthToken, &sess.Token) {
		return nil, false
	}
	var snapshot entity.Account
	if kvstore.GetJSON(ctx, st, s.Logger, kvstore.KeyCurrentUser, &snapshot) {
		sess.User = &snapshot
	}
	return &sess, true
}

// SearchAccounts looks up registered accounts by name, username or email.
// The search index is used when configured; otherwise the stored collection
// is filtered in memory.
func (s *AuthService) SearchAccounts(ctx context.Context, q string, size int) []entity.AccountSummary {
	if size <= 0 || size > 50 {
		size = 10
	}
	if s.Indexer != nil {
		res, err := s.Indexer.SearchAccounts(ctx, q, size)
		if err == nil {
			return res
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("account search index unavailable, filtering locally")
		}
	}
	out := []entity.AccountSummary{}
	for _, a := range s.Accounts.List(ctx) {
		if len(out) == size {
			break
		}
		if containsFold(q, a.Name, a.Username, a.Email) {
			out = append(out, a.Summary())
		}
	}
	return out
}

func (s *AuthService) startSession(ctx context.Context, clientID string, a entity.Account) {
	st := s.scoped(clientID)
	kvstore.SetJSON(ctx, st, s.Logger, kvstore.KeyAuthToken, entity.AuthToken{UserID: a.ID})
	kvstore.SetJSON(ctx, st, s.Logger, kvstore.KeyCurrentUser, a)
}

// announce indexes the new account and enqueues the welcome email.
// Both are best effort.
func (s *AuthService) announce(ctx context.Context, a entity.Account) {
	if s.Indexer != nil {
		if err := s.Indexer.IndexAccount(ctx, a.Summary()); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", a.ID).Warn("index account failed")
		}
	}
	if s.Jobs != nil {
		job := mailer.EmailJob{
			To:       a.Email,
			Template: mailer.TemplateWelcome,
			Data: map[string]any{
				"Name":     a.Name,
				"Username": a.Username,
				"Email":    a.Email,
			},
		}
		if err := s.Jobs.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", a.ID).Warn("enqueue welcome email failed")
		}
	}
}
