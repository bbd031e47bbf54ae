package types

// IDList is a sequence of shell item identifiers. The terminal zero-size
// record is not included.
type IDList struct {
	Size  uint16 // declared IDListSize; zero for lists embedded in extra data
	Items []ItemID
}

// ItemID is one opaque shell item record. Size includes the two size bytes.
type ItemID struct {
	Size uint16
	Data []byte
}

// Type returns the shell item class indicator (first payload byte), or 0
// for an empty item.
func (i ItemID) Type() uint8 {
	if len(i.Data) == 0 {
		return 0
	}
	return i.Data[0]
}

// Len returns the number of items.
func (l *IDList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}
