package phoneme

import "fmt"

// MedialDiacritic is one of the 11 medial clusters that can follow an onset
// consonant: the four atoms Y, R, W, H, and seven legal compositions.
type MedialDiacritic uint8

const (
	MedialY MedialDiacritic = iota
	MedialR
	MedialW
	MedialH
	MedialYw
	MedialRw
	MedialHy
	MedialHr
	MedialHw
	MedialHyw
	MedialHrw
)

var medialCombineTable = map[[2]MedialDiacritic]MedialDiacritic{
	{MedialH, MedialY}: MedialHy,
	{MedialH, MedialR}: MedialHr,
	{MedialH, MedialW}: MedialHw,
	{MedialY, MedialW}: MedialYw,
	{MedialR, MedialW}: MedialRw,
	{MedialHy, MedialW}: MedialHyw,
	{MedialHr, MedialW}: MedialHrw,
}

// Combine merges two medial diacritics into one. It succeeds iff (a, b) is
// one of the seven enumerated pairs: H∘Y, H∘R, H∘W, Y∘W, R∘W, Hy∘W, Hr∘W.
func (a MedialDiacritic) Combine(b MedialDiacritic) (MedialDiacritic, error) {
	m, ok := medialCombineTable[[2]MedialDiacritic{a, b}]
	if !ok {
		return 0, fmt.Errorf("%w: %v+%v", ErrIllegalMedialCombination, a, b)
	}
	return m, nil
}

// CombineOptional merges two optional medial diacritics, treating an absent
// medial as the identity element.
func CombineOptional(first, second *MedialDiacritic) (*MedialDiacritic, error) {
	switch {
	case first == nil && second == nil:
		return nil, nil
	case first == nil:
		m := *second
		return &m, nil
	case second == nil:
		m := *first
		return &m, nil
	default:
		m, err := first.Combine(*second)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}
}

func (m MedialDiacritic) String() string {
	switch m {
	case MedialY:
		return "Y"
	case MedialR:
		return "R"
	case MedialW:
		return "W"
	case MedialH:
		return "H"
	case MedialYw:
		return "Yw"
	case MedialRw:
		return "Rw"
	case MedialHy:
		return "Hy"
	case MedialHr:
		return "Hr"
	case MedialHw:
		return "Hw"
	case MedialHyw:
		return "Hyw"
	case MedialHrw:
		return "Hrw"
	default:
		return "?"
	}
}
