package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ConversationID_Is_Order_Independent(t *testing.T) {
	req := require.New(t)

	pairs := [][2]string{
		{"65f1a0b2c3d4e5f601234567", "65f1a0b2c3d4e5f689abcdef"},
		{"alice", "bob"},
		{"zeta", "alpha"},
		{"same", "same"},
	}

	for _, pair := range pairs {
		req.Equal(ConversationID(pair[0], pair[1]), ConversationID(pair[1], pair[0]))
	}
}

func Test_ConversationID_Sorts_Participants(t *testing.T) {
	req := require.New(t)

	req.Equal("alpha_zeta", ConversationID("zeta", "alpha"))
	req.Equal("alpha_zeta", ConversationID("alpha", "zeta"))
}

func Test_ConversationParticipants_Round_Trips(t *testing.T) {
	req := require.New(t)

	id := ConversationID("bob", "alice")
	a, b, ok := ConversationParticipants(id)
	req.True(ok)
	req.Equal("alice", a)
	req.Equal("bob", b)
}

func Test_ConversationParticipants_Rejects_Malformed(t *testing.T) {
	req := require.New(t)

	for _, id := range []string{"", "alice", "alice_", "_bob"} {
		_, _, ok := ConversationParticipants(id)
		req.False(ok, "expected %q to be rejected", id)
	}
}

func Test_IsConversationParticipant(t *testing.T) {
	req := require.New(t)

	id := ConversationID("alice", "bob")
	req.True(IsConversationParticipant(id, "alice"))
	req.True(IsConversationParticipant(id, "bob"))
	req.False(IsConversationParticipant(id, "mallory"))
}
