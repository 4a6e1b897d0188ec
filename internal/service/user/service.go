package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/auth"
	"taskboard/internal/model"
)

// DefaultBoardTitle is the title of the board auto-created at registration.
const DefaultBoardTitle = "Tablero Predeterminado"

// ErrInvalidPassword distinguishes a bad password (403) from an unknown
// user (401) on login.
var ErrInvalidPassword = errors.New("password is incorrect")

type UserGateway interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	SetDefaultBoard(ctx context.Context, userID, boardID int) error
}

type BoardGateway interface {
	Create(ctx context.Context, b *model.Board) error
}

type TokenIssuer interface {
	Issue(userID int, ttl time.Duration) (string, error)
}

type Service struct {
	users  UserGateway
	boards BoardGateway
	tokens TokenIssuer
	logger *zap.Logger
}

func NewService(users UserGateway, boards BoardGateway, tokens TokenIssuer, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		boards: boards,
		tokens: tokens,
		logger: logger,
	}
}

// Login checks credentials and returns a short-lived token plus the user
// summary the client needs to bootstrap its board view.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.UserSummary, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return "", nil, ErrInvalidPassword
	}

	token, err := s.tokens.Issue(u.UsuarioID, auth.LoginTokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, &model.UserSummary{
		UsuarioID:      u.UsuarioID,
		DefaultBoardID: u.DefaultBoardID,
	}, nil
}

type RegisterRequest struct {
	Nombre            string
	Apellido          string
	CorreoElectronico string
	Password          string
}

// Register creates the user, then the default board, then links the two.
// The three writes run sequentially without a surrounding transaction; a
// failure mid-sequence leaves a user without a default board.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &model.User{
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		CorreoElectronico: req.CorreoElectronico,
		PasswordHash:      hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	board := &model.Board{
		UsuarioPropietarioID: u.UsuarioID,
		Titulo:               DefaultBoardTitle,
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to create default board: %w", err)
	}

	if err := s.users.SetDefaultBoard(ctx, u.UsuarioID, board.BoardID); err != nil {
		return nil, fmt.Errorf("failed to link default board: %w", err)
	}
	u.DefaultBoardID = &board.BoardID

	s.logger.Info("user registered",
		zap.Int("user_id", u.UsuarioID),
		zap.Int("default_board_id", board.BoardID),
	)
	return u, nil
}

// Refresh issues a fresh token with the longer refresh TTL.
func (s *Service) Refresh(userID int) (string, error) {
	return s.tokens.Issue(userID, auth.RefreshTokenTTL)
}
