package service

import (
	"testing"

	"github.com/itchan-dev/threadline/shared/domain"
	"github.com/stretchr/testify/assert"
)

func TestParticipantLabel(t *testing.T) {
	testCases := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, ParticipantLabel(tc.index))
		})
	}
}

func TestLabelParticipants(t *testing.T) {
	t.Run("first appearance order", func(t *testing.T) {
		m1 := message("1", "c", "x", at(0))
		m2 := message("2", "c", "y", at(1))
		m3 := message("3", "c", "x", at(2))
		m4 := message("4", "c", "z", at(3))

		labels, participants := LabelParticipants([]*domain.Message{&m1, &m2, &m3, &m4})

		assert.Equal(t, domain.ParticipantLabels{"x": "A", "y": "B", "z": "C"}, labels)
		assert.Equal(t, []string{"x", "y", "z"}, participants)
	})

	t.Run("empty", func(t *testing.T) {
		labels, participants := LabelParticipants(nil)
		assert.Empty(t, labels)
		assert.NotNil(t, labels)
		assert.Empty(t, participants)
	})
}
