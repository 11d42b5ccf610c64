package component

// Slot is where an item is worn or held.
type Slot uint8

const (
	SlotNone Slot = iota // consumable, cannot be equipped
	SlotMainHand
	SlotOffHand
	SlotHead
	SlotChest
	SlotLegs
	SlotFeet
)

func (s Slot) String() string {
	switch s {
	case SlotMainHand:
		return "main hand"
	case SlotOffHand:
		return "off hand"
	case SlotHead:
		return "head"
	case SlotChest:
		return "chest"
	case SlotLegs:
		return "legs"
	case SlotFeet:
		return "feet"
	}
	return "none"
}

// Item is a plain value; only its combat-relevant numbers are modelled.
type Item struct {
	Name     string
	Slot     Slot
	Strength int // added to attack damage when held in the main hand
	Defense  int
	Healing  int // HP restored when used
}

// IsEmpty returns true when this Item is the zero value.
func (i Item) IsEmpty() bool { return i.Name == "" }

// Equipable reports whether the item can occupy an equipment slot.
func (i Item) Equipable() bool { return i.Slot != SlotNone }

// Equipment maps each slot to the item worn there.
type Equipment map[Slot]Item

// Defense sums the defense of every equipped item.
func (e Equipment) Defense() int {
	total := 0
	for _, it := range e {
		total += it.Defense
	}
	return total
}
