package service

// CanMutate reports whether the acting user may modify or delete a record
// owned by ownerID. Ownership is the only authorization rule: there are no
// roles and no admin override. Both ids are canonical id strings; an empty
// actor never qualifies.
func CanMutate(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}
