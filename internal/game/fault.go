package game

import (
	"fmt"
	"strings"
)

// Fault panics with an engine-internal consistency failure. These are never
// recovered by normal control flow: they indicate a defect in the engine or
// in upstream ability data, not a condition a player can trigger. The panic
// message carries the battle ID and the offending values so the failing
// state can be reconstructed.
func Fault(b *BattleState, message string, kv ...any) {
	var sb strings.Builder
	sb.WriteString("engine fault: ")
	sb.WriteString(message)
	if b != nil {
		fmt.Fprintf(&sb, " [battle=%s turn=%d]", b.ID, b.Turn.TurnID)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", kv[i], kv[i+1])
	}
	panic(sb.String())
}
