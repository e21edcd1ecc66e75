package domain

// AccessContext tracks an access request that fails by default and requires
// explicit approval from a validator. It lives for the duration of a single
// access-check pass.
type AccessContext struct {
	approved bool
}

// Approve informs the context that the access request is granted. Approval
// is monotonic; there is no way to revoke it.
func (c *AccessContext) Approve() { c.approved = true }

// CanAccess reports whether any validator approved the request.
func (c *AccessContext) CanAccess() bool { return c.approved }
