package foundations

// Guard identifies one show-rule application. Content stamped with a guard
// is skipped by the rule that minted it on later passes, so a rule whose
// output matches its own trigger selector cannot re-expand forever.
//
// Guards are minted by the engine from a per-pass counter; they are opaque
// to everything else.
type Guard uint64
