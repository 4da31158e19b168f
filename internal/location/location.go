package location

// Emirates is the flat set of selectable regions, in display order.
var Emirates = []string{
	"Dubai",
	"Abu Dhabi",
	"Ras Al Khaimah",
	"Sharjah",
	"Fujairah",
	"Ajman",
	"Umm Al Quwain",
	"Al Ain",
}

func IsKnown(name string) bool {
	for _, e := range Emirates {
		if e == name {
			return true
		}
	}

	return false
}
