// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-web-server/internal/mock"
	"github.com/MKhiriev/go-web-server/internal/service"
	"github.com/MKhiriev/go-web-server/internal/store"
	"github.com/MKhiriev/go-web-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)

	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	found := models.User{UserID: 3, Login: "alice"}
	auth.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "secret"}).Return(found, nil)
	auth.EXPECT().CreateToken(gomock.Any(), found).Return(models.Token{SignedString: "signed.jwt", ExpiresAt: expires}, nil)

	h := newTestHandler(t, auth, nil)
	r, _, jar, _ := pipelineRequest(t, http.MethodPost, "/api/login", `{"username":"alice","pwd":"secret"}`)
	rec := httptest.NewRecorder()

	require.NoError(t, h.login(rec, r))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"success":true}}`, rec.Body.String())

	staged := findCookie(jar.Staged(), testCookieName)
	require.NotNil(t, staged)
	assert.Equal(t, "signed.jwt", staged.Value)
	assert.True(t, staged.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, staged.SameSite)
	assert.True(t, staged.Expires.Equal(expires))
}

func TestLogin_Failures_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setupMock   func(m *mock.MockAuthService)
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        "{invalid json}",
			setupMock:   func(m *mock.MockAuthService) {},
			wantKind:    KindValidationFailed,
			wantMessage: "invalid JSON was passed",
		},
		{
			name: "empty credentials",
			body: `{"username":"","pwd":""}`,
			setupMock: func(m *mock.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantKind:    KindValidationFailed,
			wantMessage: "invalid data provided",
		},
		{
			name: "unknown user",
			body: `{"username":"ghost","pwd":"x"}`,
			setupMock: func(m *mock.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("user search by login failed: %w", store.ErrNoUserWasFound))
			},
			wantKind:    KindLoginFailed,
			wantMessage: "invalid login/password",
		},
		{
			name: "wrong password",
			body: `{"username":"alice","pwd":"nope"}`,
			setupMock: func(m *mock.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)
			},
			wantKind:    KindLoginFailed,
			wantMessage: "invalid login/password",
		},
		{
			name: "unexpected error",
			body: `{"username":"alice","pwd":"secret"}`,
			setupMock: func(m *mock.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db connection lost"))
			},
			wantKind:    KindInternal,
			wantMessage: "internal server error",
		},
		{
			name: "token creation failed",
			body: `{"username":"alice","pwd":"secret"}`,
			setupMock: func(m *mock.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1, Login: "alice"}, nil)
				m.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantKind:    KindInternal,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockAuthService(ctrl)
			tt.setupMock(auth)

			h := newTestHandler(t, auth, nil)
			r, _, jar, _ := pipelineRequest(t, http.MethodPost, "/api/login", tt.body)
			rec := httptest.NewRecorder()

			perr := asPipelineError(t, h.login(rec, r))

			assert.Equal(t, tt.wantKind, perr.Kind)
			assert.Equal(t, tt.wantMessage, perr.Message)
			assert.Empty(t, jar.Staged())
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestLogoff_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantErr     bool
		wantRemoval bool
	}{
		{name: "logoff true", body: `{"logoff":true}`, wantRemoval: true},
		{name: "logoff false", body: `{"logoff":false}`, wantErr: true},
		{name: "invalid JSON", body: `nope`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil, nil)
			r, _, jar, _ := pipelineRequest(t, http.MethodPost, "/api/logoff", tt.body)
			rec := httptest.NewRecorder()

			err := h.logoff(rec, r)
			if tt.wantErr {
				assert.Equal(t, KindValidationFailed, asPipelineError(t, err).Kind)
				assert.Empty(t, jar.Staged())
				return
			}

			require.NoError(t, err)
			var resp models.LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Result.LoggedOff)

			staged := findCookie(jar.Staged(), testCookieName)
			require.NotNil(t, staged)
			assert.Equal(t, -1, staged.MaxAge)
		})
	}
}

func TestLogin_WithoutJar(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1, Login: "alice"}, nil)
	auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "x"}, nil)

	h := newTestHandler(t, auth, nil)
	r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","pwd":"secret"}`))

	err := h.login(httptest.NewRecorder(), r)
	assert.ErrorIs(t, err, errJarNotInstalled)
}
