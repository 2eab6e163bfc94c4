package service

import (
	"github.com/itchan-dev/threadline/shared/domain"
)

// ParticipantLabel returns the spreadsheet-column label for a zero-based
// position: 0 -> A, 25 -> Z, 26 -> AA, 27 -> AB.
func ParticipantLabel(i int) domain.ParticipantLabel {
	var buf []byte
	for n := i + 1; n > 0; n /= 26 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
	}
	return string(buf)
}

// LabelParticipants labels distinct senders in order of first appearance.
// Labels are local to the given messages; an empty input gives an empty map.
func LabelParticipants(messages []*domain.Message) (domain.ParticipantLabels, []domain.UserId) {
	labels := make(domain.ParticipantLabels)
	var participants []domain.UserId
	for _, m := range messages {
		if _, ok := labels[m.SenderId]; ok {
			continue
		}
		labels[m.SenderId] = ParticipantLabel(len(participants))
		participants = append(participants, m.SenderId)
	}
	return labels, participants
}
