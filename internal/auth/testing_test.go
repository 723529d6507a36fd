// AngelaMos | 2026
// testing_test.go

package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/campus-api/internal/config"
	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

var testJWTConfig = config.JWTConfig{
	AccessTokenExpire: time.Hour,
	Issuer:            "campus-api-test",
	Audience:          "campus-api-test-clients",
}

func newTestTokenManager(t *testing.T) (*TokenManager, *MemoryDenylist) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	denylist := NewMemoryDenylist()
	m, err := NewTokenManagerFromKey(key, testJWTConfig, denylist)
	require.NoError(t, err)

	return m, denylist
}

// fakeUsers is an in-memory credential store seeded with the admin and
// user roles.
type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*UserInfo
	roles  map[int64]*RoleInfo
}

func newFakeUsers() *fakeUsers {
	adminDesc, userDesc := "Administrator", "Regular User"
	return &fakeUsers{
		users: make(map[int64]*UserInfo),
		roles: map[int64]*RoleInfo{
			1: {ID: 1, Name: "admin", Description: &adminDesc},
			2: {ID: 2, Name: "user", Description: &userDesc},
		},
	}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUsers) RoleExists(_ context.Context, roleID int64) (bool, error) {
	_, ok := f.roles[roleID]
	return ok, nil
}

func (f *fakeUsers) DefaultRoleID(context.Context) (*int64, error) {
	id := int64(2)
	return &id, nil
}

func (f *fakeUsers) Create(
	_ context.Context,
	name, email, passwordHash string,
	roleID *int64,
) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			return nil, core.ErrDuplicateKey
		}
	}

	f.nextID++
	now := time.Now()
	u := &UserInfo{
		ID:           f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       roleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if roleID != nil {
		u.Role = f.roles[*roleID]
	}
	f.users[u.ID] = u

	cp := *u
	return &cp, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, userID int64, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return core.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUsers) setRole(userID int64, roleID *int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[userID]
	u.RoleID = roleID
	u.Role = nil
	if roleID != nil {
		u.Role = f.roles[*roleID]
	}
}

var _ UserProvider = (*fakeUsers)(nil)
