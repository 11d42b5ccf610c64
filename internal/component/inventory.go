package component

// Inventory is unordered overflow storage for items that are not equipped.
type Inventory struct {
	Items []Item
}

// Add stores an item.
func (inv *Inventory) Add(it Item) {
	inv.Items = append(inv.Items, it)
}

// Remove takes out the item at index i. It returns false when i is out of range.
func (inv *Inventory) Remove(i int) (Item, bool) {
	if i < 0 || i >= len(inv.Items) {
		return Item{}, false
	}
	it := inv.Items[i]
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return it, true
}

// Len returns the number of stored items.
func (inv *Inventory) Len() int { return len(inv.Items) }
