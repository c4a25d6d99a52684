package tribute

// DefaultRoster returns the built-in 24-tribute field, two per district.
// Used when no roster file is supplied.
func DefaultRoster() Roster {
	return Roster{
		{Key: "t1", Name: "Aurelia Voss", Gender: "female", Age: 17, District: 1},
		{Key: "t2", Name: "Castor Brill", Gender: "male", Age: 18, District: 1},
		{Key: "t3", Name: "Mira Stahl", Gender: "female", Age: 16, District: 2},
		{Key: "t4", Name: "Dorian Flux", Gender: "male", Age: 18, District: 2},
		{Key: "t5", Name: "Sable Quinn", Gender: "female", Age: 15, District: 3},
		{Key: "t6", Name: "Ezra Volt", Gender: "male", Age: 17, District: 3},
		{Key: "t7", Name: "Nerissa Tide", Gender: "female", Age: 18, District: 4},
		{Key: "t8", Name: "Finn Harrow", Gender: "male", Age: 16, District: 4},
		{Key: "t9", Name: "Wren Faraday", Gender: "female", Age: 14, District: 5},
		{Key: "t10", Name: "Jasper Grid", Gender: "male", Age: 17, District: 5},
		{Key: "t11", Name: "Lyra Motte", Gender: "female", Age: 16, District: 6},
		{Key: "t12", Name: "Silas Rails", Gender: "male", Age: 18, District: 6},
		{Key: "t13", Name: "Tamsin Bough", Gender: "female", Age: 15, District: 7},
		{Key: "t14", Name: "Rowan Pike", Gender: "male", Age: 17, District: 7},
		{Key: "t15", Name: "Ines Weft", Gender: "female", Age: 16, District: 8},
		{Key: "t16", Name: "Marlo Hemm", Gender: "male", Age: 15, District: 8},
		{Key: "t17", Name: "Greta Sheaf", Gender: "female", Age: 17, District: 9},
		{Key: "t18", Name: "Ossian Rye", Gender: "male", Age: 18, District: 9},
		{Key: "t19", Name: "Petra Herd", Gender: "female", Age: 16, District: 10},
		{Key: "t20", Name: "Bram Oxley", Gender: "male", Age: 17, District: 10},
		{Key: "t21", Name: "Fern Tiller", Gender: "female", Age: 14, District: 11},
		{Key: "t22", Name: "Cole Furrow", Gender: "male", Age: 16, District: 11},
		{Key: "t23", Name: "Ada Cinder", Gender: "female", Age: 15, District: 12},
		{Key: "t24", Name: "Flint Coalwright", Gender: "male", Age: 18, District: 12},
	}
}
