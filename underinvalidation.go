package paint

// subsequenceCheck tracks the comparison of a repainted subsequence with
// the cached one, over the previous items [begin, end).
type subsequenceCheck struct {
	begin, end int
	// skipped counts new begin items that did not match. They are
	// forgiven when removed as no-op pairs.
	skipped int
	prefix  string
}

func (s *subsequenceCheck) active() bool { return s.begin < s.end }

func (s *subsequenceCheck) removeLast() {
	if s.skipped > 0 {
		s.skipped--
	} else {
		s.begin--
	}
}

// checkUnderInvalidation verifies the new item at index against the
// cached content of its client.
func (c *Controller) checkUnderInvalidation(index int) {
	item := c.newList.Item(index)
	if c.check.active() {
		c.checkSubsequenceItem(index)
		return
	}
	if !item.typ.IsDrawing() || item.skippedCache || !c.ClientCacheIsValid(item.client) {
		return
	}
	key := item.ID()
	j, ok := c.cachedKeys[key]
	if !ok || c.isUsed(key) {
		c.underInvalidation("", "no cached display item", item, nil)
	}
	old := c.current.Item(j)
	if !item.Equal(old) {
		c.underInvalidation("", "display item changed", item, old)
	}
	c.newFrom[index] = j
	c.claim(index, key)
}

func (c *Controller) checkSubsequenceItem(index int) {
	item := c.newList.Item(index)
	var old *DisplayItem
	if j := c.check.begin + c.check.skipped; j < c.check.end {
		old = c.current.Item(j)
	}
	equal := old != nil && item.Equal(old)
	if !equal && item.IsBegin() {
		c.check.skipped++
		return
	}
	if c.check.skipped > 0 || !equal {
		// Report the earliest mismatch.
		c.underInvalidation(c.check.prefix, "display item changed",
			c.newList.Item(index-c.check.skipped), c.current.Item(c.check.begin))
	}
	if c.ClientCacheIsValid(item.client) {
		c.newFrom[index] = c.check.begin
		if item.IsCacheable() && !c.isUsed(item.ID()) {
			c.claim(index, item.ID())
		}
	}
	c.check.begin++
}

func (c *Controller) underInvalidation(prefix, msg string, item, old *DisplayItem) {
	err := &UnderInvalidationError{
		Prefix:  prefix,
		Message: msg,
		Client:  item.client.DebugName(),
		New:     item.String(),
	}
	if old != nil {
		err.Old = old.String()
	}
	c.logger().Error("paint: under-invalidation", "client", err.Client, "message", msg, "new", err.New, "old", err.Old)
	panic(err)
}
