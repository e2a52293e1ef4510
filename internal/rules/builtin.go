package rules

// Builtin returns the definitions available without a rules file: "settler"
// for people and "beast" for creatures.
func Builtin() Document {
	return Document{Definitions: []DefinitionDoc{
		{
			ID: "settler",
			First: SegmentDoc{
				Male:   PoolDoc{Names: maleNames},
				Female: PoolDoc{Names: femaleNames},
			},
			Last: SegmentDoc{
				Any: PoolDoc{Names: lastNames, Chance: chance(85)},
			},
			Conjunctions: ConjunctionsDoc{Any: []string{" "}},
			Short:        []string{"first"},
		},
		{
			ID: "beast",
			First: SegmentDoc{
				Any:    PoolDoc{Names: beastNames, Chance: chance(40)},
				Suffix: PoolDoc{Names: []string{" the Old", " the Scarred", " the Swift"}, Chance: chance(20)},
			},
			Short: []string{"first"},
		},
	}}
}

func chance(v int) *int {
	return &v
}

var maleNames = []string{
	"Aldric", "Bram", "Cedric", "Doran", "Erik", "Finn", "Gareth",
	"Halvard", "Ivan", "Jasper", "Kael", "Leif", "Magnus", "Nils",
	"Oswin", "Per", "Quinn", "Rowan", "Stellan", "Theron", "Ulric",
	"Varen", "Wren", "Yorick", "Zander", "Arlen", "Beric", "Cade",
	"Dorian", "Edric", "Falk", "Gunnar", "Hugo", "Ivar", "Jorik",
}

var femaleNames = []string{
	"Astrid", "Brenna", "Calla", "Daria", "Elara", "Freya", "Greta",
	"Helene", "Iris", "Juno", "Kira", "Lena", "Mira", "Nessa",
	"Olwen", "Petra", "Runa", "Senna", "Thea", "Una", "Vera",
	"Willa", "Yara", "Zara", "Ava", "Birgit", "Cora", "Dagny",
	"Eira", "Fern", "Gwen", "Hilde", "Inga", "Johanna", "Katla",
}

var lastNames = []string{
	"Voss", "Thornwood", "Blackwood", "Ashford", "Ironhand", "Dunmore",
	"Greenvale", "Stormcrow", "Frostborn", "Hearthstone", "Millward",
	"Copperfield", "Ravenmoor", "Silverdale", "Wolfsbane", "Stoneheart",
	"Deepwell", "Brightwater", "Oakenshield", "Redforge", "Windholm",
	"Marshwood", "Goldhaven", "Nightingale", "Riverstone", "Steelworth",
	"Embercroft", "Holloway", "Dawnridge", "Farrow", "Wyatt", "Thatcher",
	"Briar", "Caldwell", "Frost", "Harper", "Mercer", "Ward", "Cross",
}

var beastNames = []string{
	"Fang", "Ash", "Grim", "Moss", "Thorn", "Ember", "Shade", "Tusk",
}
