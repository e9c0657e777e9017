package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"remoteready/internal/domain"
)

func TestEligibility(t *testing.T) {
	cases := []struct {
		reads     int
		eligible  bool
		remaining int
		percent   float64
	}{
		{0, false, 10, 0},
		{4, false, 6, 40},
		{9, false, 1, 90},
		{10, true, 0, 100},
		{15, true, 0, 150},
	}
	for _, tc := range cases {
		p := domain.Eligibility(tc.reads)
		assert.Equal(t, tc.eligible, p.Eligible, "reads=%d", tc.reads)
		assert.Equal(t, tc.remaining, p.Remaining, "reads=%d", tc.reads)
		assert.InDelta(t, tc.percent, p.Percent, 0.0001, "reads=%d", tc.reads)
		assert.Equal(t, domain.PostsForCertificate, p.Required)
	}
}

func TestEligibility_NegativeCountIsZero(t *testing.T) {
	p := domain.Eligibility(-2)
	assert.Equal(t, 0, p.ReadCount)
	assert.Equal(t, 10, p.Remaining)
}

func TestNewProgressReport_Messages(t *testing.T) {
	r := domain.NewProgressReport(7, 4)
	assert.Equal(t, int64(7), r.UserID)
	assert.Equal(t, 4, r.TotalRead)
	assert.Equal(t, 6, r.Remaining)
	assert.Equal(t, "Continue lendo! Faltam apenas 6 posts para você gerar seu certificado.", r.Message)

	r = domain.NewProgressReport(7, 12)
	assert.True(t, r.Eligible)
	assert.Equal(t, "Parabéns! Você já pode gerar seu certificado de conclusão!", r.Message)
}

func TestNewCertificateStatus(t *testing.T) {
	assert.False(t, domain.NewCertificateStatus(1, 9).Eligible)
	assert.Contains(t, domain.NewCertificateStatus(1, 9).Message, "Continue lendo")

	s := domain.NewCertificateStatus(1, 10)
	assert.True(t, s.Eligible)
	assert.Equal(t, "Parabéns! Você está elegível para gerar seu certificado.", s.Message)
}
