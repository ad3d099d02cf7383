package words

// digits is indexed by digit; zero is never spoken.
var digits = [10]string{
	"",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// teens is indexed by value - 10.
var teens = [10]string{
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// places is indexed by group position, least significant first.
var places = [MaxPlaces]string{
	"",
	"thousand",
	"million",
	"billion",
	"trillion",
}
