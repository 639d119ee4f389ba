package domain

import "strings"

// ConversationSeparator joins the two participant ids of a conversation.
// Participant ids are ObjectID hex strings, so the separator never occurs
// inside an id.
const ConversationSeparator = "_"

// ConversationID derives the canonical conversation id for a pair of users.
// The two ids are sorted lexicographically before joining, so both
// participants compute the same id regardless of who initiates. The REST
// layer and the realtime gateway must both go through this function.
func ConversationID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + ConversationSeparator + userB
}

// ConversationParticipants splits a canonical conversation id back into its
// two participant ids. ok is false when the id is not in canonical form.
func ConversationParticipants(conversationID string) (string, string, bool) {
	parts := strings.Split(conversationID, ConversationSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// IsConversationParticipant reports whether userID is one of the two
// participants encoded in the conversation id.
func IsConversationParticipant(conversationID, userID string) bool {
	a, b, ok := ConversationParticipants(conversationID)
	return ok && (a == userID || b == userID)
}
