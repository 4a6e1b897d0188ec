package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/auth"
	"taskboard/internal/model"
)

type fakeUserGateway struct {
	byEmail map[string]*model.User
	created []*model.User
	linked  map[int]int
	nextID  int
}

func newFakeUserGateway() *fakeUserGateway {
	return &fakeUserGateway{byEmail: map[string]*model.User{}, linked: map[int]int{}, nextID: 1}
}

func (g *fakeUserGateway) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := g.byEmail[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

func (g *fakeUserGateway) GetByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range g.byEmail {
		if u.UsuarioID == id {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (g *fakeUserGateway) Create(_ context.Context, u *model.User) error {
	u.UsuarioID = g.nextID
	g.nextID++
	g.created = append(g.created, u)
	g.byEmail[u.CorreoElectronico] = u
	return nil
}

func (g *fakeUserGateway) SetDefaultBoard(_ context.Context, userID, boardID int) error {
	g.linked[userID] = boardID
	return nil
}

type fakeBoardGateway struct {
	created []*model.Board
	nextID  int
}

func (g *fakeBoardGateway) Create(_ context.Context, b *model.Board) error {
	g.nextID++
	b.BoardID = g.nextID
	g.created = append(g.created, b)
	return nil
}

type fakeTokenIssuer struct {
	lastTTL time.Duration
}

func (f *fakeTokenIssuer) Issue(userID int, ttl time.Duration) (string, error) {
	f.lastTTL = ttl
	return "token-for-user", nil
}

func TestRegisterCreatesDefaultBoard(t *testing.T) {
	users := newFakeUserGateway()
	boards := &fakeBoardGateway{}
	svc := NewService(users, boards, &fakeTokenIssuer{}, zap.NewNop())

	u, err := svc.Register(context.Background(), RegisterRequest{
		Nombre:            "Ana",
		Apellido:          "García",
		CorreoElectronico: "ana@example.com",
		Password:          "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if len(boards.created) != 1 {
		t.Fatalf("expected 1 board created, got %d", len(boards.created))
	}
	b := boards.created[0]
	if b.Titulo != DefaultBoardTitle {
		t.Errorf("expected board title %q, got %q", DefaultBoardTitle, b.Titulo)
	}
	if b.UsuarioPropietarioID != u.UsuarioID {
		t.Errorf("board owner %d does not match user %d", b.UsuarioPropietarioID, u.UsuarioID)
	}
	if got, ok := users.linked[u.UsuarioID]; !ok || got != b.BoardID {
		t.Errorf("default board was not linked: linked=%v", users.linked)
	}
	if u.DefaultBoardID == nil || *u.DefaultBoardID != b.BoardID {
		t.Errorf("user DefaultBoardID not set: %v", u.DefaultBoardID)
	}

	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Error("password was not hashed")
	}
	if !auth.CheckPassword("secret123", u.PasswordHash) {
		t.Error("stored hash does not verify against the password")
	}
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserGateway()
	hash, _ := auth.HashPassword("secret123")
	boardID := 9
	users.byEmail["ana@example.com"] = &model.User{
		UsuarioID:         3,
		CorreoElectronico: "ana@example.com",
		PasswordHash:      hash,
		DefaultBoardID:    &boardID,
	}
	issuer := &fakeTokenIssuer{}
	svc := NewService(users, &fakeBoardGateway{}, issuer, zap.NewNop())

	token, summary, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if summary.UsuarioID != 3 {
		t.Errorf("expected user id 3, got %d", summary.UsuarioID)
	}
	if summary.DefaultBoardID == nil || *summary.DefaultBoardID != 9 {
		t.Errorf("expected default board id 9, got %v", summary.DefaultBoardID)
	}
	if issuer.lastTTL != auth.LoginTokenTTL {
		t.Errorf("expected login TTL %v, got %v", auth.LoginTokenTTL, issuer.lastTTL)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewService(newFakeUserGateway(), &fakeBoardGateway{}, &fakeTokenIssuer{}, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "x")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserGateway()
	hash, _ := auth.HashPassword("right")
	users.byEmail["ana@example.com"] = &model.User{UsuarioID: 3, CorreoElectronico: "ana@example.com", PasswordHash: hash}
	svc := NewService(users, &fakeBoardGateway{}, &fakeTokenIssuer{}, zap.NewNop())

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestRefreshUsesLongerTTL(t *testing.T) {
	issuer := &fakeTokenIssuer{}
	svc := NewService(newFakeUserGateway(), &fakeBoardGateway{}, issuer, zap.NewNop())

	if _, err := svc.Refresh(3); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if issuer.lastTTL != auth.RefreshTokenTTL {
		t.Errorf("expected refresh TTL %v, got %v", auth.RefreshTokenTTL, issuer.lastTTL)
	}
}
