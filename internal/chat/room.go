package chat

import (
	"fmt"

	"github.com/google/uuid"
)

// Namespace for room ids. Deriving the id from the pair makes room creation
// idempotent: the same client/provider pair always maps to the same room.
var roomNamespace = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

func RoomID(clientID, providerID uint) string {
	pair := fmt.Sprintf("%d:%d", clientID, providerID)
	return uuid.NewSHA1(roomNamespace, []byte(pair)).String()
}
