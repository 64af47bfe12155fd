package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/config"
	"kodevidecamp/internal/models"
)

func TestListFAQs(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		query   string
		visible int
		ids     []int64
	}{
		{name: "all", query: "", visible: 6},
		{name: "payment", query: "?category=payment", visible: 2, ids: []int64{2, 6}},
		{name: "search refund", query: "?search=" + url.QueryEscape("환불"), visible: 1, ids: []int64{6}},
		{name: "no match", query: "?search=zzz-not-there", visible: 0, ids: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := s.doJSON(t, http.MethodGet, "/api/faqs"+tt.query, "", "")
			require.Equal(t, http.StatusOK, status)
			assert.True(t, env.Success)

			listing := decode[catalog.Listing[models.FAQ]](t, env.Data)
			assert.Equal(t, 6, listing.Total)
			assert.Equal(t, tt.visible, listing.Visible)
			assert.Len(t, listing.Items, tt.visible)
			if tt.ids != nil {
				got := make([]int64, 0, len(listing.Items))
				for _, f := range listing.Items {
					got = append(got, f.ID)
				}
				assert.Equal(t, tt.ids, got)
			}
		})
	}
}

func TestGetFAQ(t *testing.T) {
	s := newTestServer(t)

	status, env := s.doJSON(t, http.MethodGet, "/api/faqs/6", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(6), decode[models.FAQ](t, env.Data).ID)

	status, env = s.doJSON(t, http.MethodGet, "/api/faqs/999", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, env.Error)

	status, _ = s.doJSON(t, http.MethodGet, "/api/faqs/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateFAQRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	body := `{"category":"general","question":"q","answer":"a"}`

	status, _ := s.doJSON(t, http.MethodPost, "/api/faqs", body, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.doJSON(t, http.MethodPost, "/api/faqs", body, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)

	viewer, err := config.GenerateToken(testSecret, "kim", "viewer", time.Hour)
	require.NoError(t, err)
	status, _ = s.doJSON(t, http.MethodPost, "/api/faqs", body, viewer)
	assert.Equal(t, http.StatusForbidden, status)

	forged, err := config.GenerateToken("other-secret", "admin", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	status, _ = s.doJSON(t, http.MethodPost, "/api/faqs", body, forged)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestCreateFAQ(t *testing.T) {
	s := newTestServer(t)

	body := `{"category":"hackathon","priority":"high","question":" 팀은 몇 명인가요? ","answer":"최대 4명입니다.","tags":"해커톤, 팀"}`
	status, env := s.doJSON(t, http.MethodPost, "/api/faqs", body, adminToken(t))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "FAQ가 성공적으로 추가되었습니다.", env.Message)

	created := decode[models.FAQ](t, env.Data)
	assert.Equal(t, fixedNow.UnixMilli(), created.ID)
	assert.Equal(t, "팀은 몇 명인가요?", created.Question)
	assert.Equal(t, []string{"해커톤", "팀"}, created.Tags)

	_, env = s.doJSON(t, http.MethodGet, "/api/faqs", "", "")
	listing := decode[catalog.Listing[models.FAQ]](t, env.Data)
	require.Equal(t, 7, listing.Total)
	assert.Equal(t, created, listing.Items[0])
}

func TestCreateFAQValidation(t *testing.T) {
	s := newTestServer(t)

	status, env := s.doJSON(t, http.MethodPost, "/api/faqs", `{"category":"general","question":"","answer":"a"}`, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "모든 필수 항목을 입력해주세요.", env.Error)

	status, env = s.doJSON(t, http.MethodPost, "/api/faqs", `{"category":"sports","question":"q","answer":"a"}`, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "category", env.Field)

	_, env = s.doJSON(t, http.MethodGet, "/api/faqs", "", "")
	assert.Equal(t, 6, decode[catalog.Listing[models.FAQ]](t, env.Data).Total)
}

func TestCreateFAQWriteFailure(t *testing.T) {
	s := newTestServer(t)
	s.slot.setErr = errDiskFull

	status, env := s.doJSON(t, http.MethodPost, "/api/faqs", `{"category":"general","question":"q","answer":"a"}`, adminToken(t))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "FAQ 저장에 실패했습니다.", env.Error)
}

func TestDeleteFAQ(t *testing.T) {
	s := newTestServer(t)
	token := adminToken(t)

	status, env := s.doJSON(t, http.MethodDelete, "/api/faqs/3", "", token)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Deleted)
	assert.True(t, *env.Deleted)
	assert.Equal(t, "FAQ가 삭제되었습니다.", env.Message)

	status, _ = s.doJSON(t, http.MethodGet, "/api/faqs/3", "", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, env = s.doJSON(t, http.MethodDelete, "/api/faqs/3", "", token)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Deleted)
	assert.False(t, *env.Deleted)
	assert.Empty(t, env.Message)

	_, env = s.doJSON(t, http.MethodGet, "/api/faqs", "", "")
	assert.Equal(t, 5, decode[catalog.Listing[models.FAQ]](t, env.Data).Total)
}

func TestFAQFeedback(t *testing.T) {
	s := newTestServer(t)

	_, env := s.doJSON(t, http.MethodGet, "/api/faqs/1", "", "")
	before := decode[models.FAQ](t, env.Data)

	status, env := s.doJSON(t, http.MethodPost, "/api/faqs/1/feedback", `{"helpful":true}`, "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Updated)
	assert.True(t, *env.Updated)
	assert.Equal(t, "피드백이 등록되었습니다.", env.Message)

	after := decode[models.FAQ](t, env.Data)
	want := before
	want.Helpful.Yes++
	assert.Equal(t, want, after)

	status, env = s.doJSON(t, http.MethodPost, "/api/faqs/1/feedback", `{"helpful":false}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, before.Helpful.No+1, decode[models.FAQ](t, env.Data).Helpful.No)

	status, env = s.doJSON(t, http.MethodPost, "/api/faqs/424242/feedback", `{"helpful":true}`, "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Updated)
	assert.False(t, *env.Updated)
}
