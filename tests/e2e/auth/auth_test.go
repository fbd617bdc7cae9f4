//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"parkspot/internal/domain/user"
	"parkspot/internal/handler/dto/request"
	"parkspot/internal/handler/dto/response"
	"parkspot/internal/pkg/cookie"
	"parkspot/tests/common/authtest"
	"parkspot/tests/common/builder"
	"parkspot/tests/common/dbtest"
	"parkspot/tests/common/httptest"
	"parkspot/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
	profileURL  = "/api/users/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleOwner))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))

	// 非アクティブユーザーを作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		req            request.RegisterRequest
		expectedStatus int
		expectedRole   string
		description    string
	}{
		{
			name:           "一般ユーザーの登録",
			req:            builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) { b.Email = "new@example.com" }).BuildRegisterDTO(),
			expectedStatus: http.StatusCreated,
			expectedRole:   "user",
			description:    "ロール未指定ならuserで登録されること",
		},
		{
			name: "オーナーの登録",
			req: builder.NewAuthBuilder().WithRole("owner").
				With(func(b *builder.AuthBuilder) { b.Email = "new-owner@example.com" }).BuildRegisterDTO(),
			expectedStatus: http.StatusCreated,
			expectedRole:   "owner",
			description:    "ownerロールで自己登録できること",
		},
		{
			name:           "登録済みメールアドレス",
			req:            builder.NewAuthBuilder().BuildRegisterDTO(),
			expectedStatus: http.StatusConflict,
			description:    "同じメールアドレスでは登録できないこと",
		},
		{
			name:           "adminロールの自己登録",
			req:            builder.NewAuthBuilder().WithRole("admin").BuildRegisterDTO(),
			expectedStatus: http.StatusBadRequest,
			description:    "adminは自己登録できないこと",
		},
		{
			name: "短すぎるパスワード",
			req: builder.NewAuthBuilder().
				With(func(b *builder.AuthBuilder) { b.Email = "short@example.com"; b.Password = "short" }).BuildRegisterDTO(),
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.req, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				var res response.AuthResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.Equal(t, tt.expectedRole, res.Role)
				require.NotEmpty(t, res.AccessToken)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName), "アクセストークンのCookieがない")
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestUserPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.AuthResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotEmpty(t, loginRes.RefreshToken, "リフレッシュトークンが空")

				refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
				require.NotNil(t, refresh, "リフレッシュトークンのCookieがない")
				require.True(t, refresh.HttpOnly)

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("Cookieのリフレッシュトークンで更新できる", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestUserPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, httptest.ExtractCookies(lw), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.TokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("ボディのリフレッシュトークンで更新できる", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestUserPassword}, "")
		var loginRes response.AuthResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &loginRes))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: loginRes.RefreshToken}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("アクセストークンでは更新できない", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestUserPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("リフレッシュトークンなし", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでCookieが削除される", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestUserPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(lw), "")
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Less(t, cleared.MaxAge, 0)
	})

	s.Run("トークンなし", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "オーナーの情報取得",
			setupUser: func() (string, string, string) {
				token := authtest.LoginUser(s.T(), s.Router, "owner@example.com", dbtest.TestUserPassword)
				return "owner@example.com", string(user.RoleOwner), token
			},
			expectedStatus: http.StatusOK,
			description:    "オーナーの情報が取得できること",
		},
		{
			name: "管理者の情報取得",
			setupUser: func() (string, string, string) {
				_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
				return "admin@example.com", string(user.RoleAdmin), token
			},
			expectedStatus: http.StatusOK,
			description:    "管理者の情報が取得できること",
		},
		{
			name: "無効なトークン",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでは情報取得できないこと",
		},
		{
			name: "トークンなし",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでは情報取得できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "レスポンスにメールアドレスが含まれていない")
				require.Contains(t, responseBody, role, "レスポンスにロールが含まれていない")
				require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestUpdateProfile() {
	s.Run("名前と電話番号を更新できる", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestUserPassword)
		name, phone := "Hanako Suzuki", "+81-80-0000-1111"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, profileURL,
			request.UpdateProfileRequest{Name: &name, Phone: &phone}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, name, res.Name)
		require.NotNil(t, res.Phone)
		require.Equal(t, phone, *res.Phone)
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleUser))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestUserPassword)
		token2 := authtest.LoginUser(t, s.Router, "test@example.com", dbtest.TestUserPassword)
		require.NotEqual(t, token1, token2, "同時ログインで同じトークンが返された")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)
		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}
