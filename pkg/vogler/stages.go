package vogler

import (
	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
)

const (
	ordinary = narrative.WorldOrdinary
	special  = narrative.WorldSpecial
)

// angle places stage n on a 30 degree grid with stage 1 at the top.
func angle(n int) *float64 {
	a := float64((270 + (n-1)*30) % 360)
	return &a
}

var stages = narrative.MustCatalog(
	narrative.Stage{
		Number:      1,
		Name:        "Ordinary World",
		Description: "Hero's starting point",
		Act:         narrative.ActBeginning,
		World:       ordinary,
		Color:       "#e6f3ff",
		Angle:       angle(1),
		Elements: []narrative.Element{
			{Name: "Initial State", Description: "Hero's life before the adventure", Keywords: []string{"normal", "routine", "ordinary", "everyday"}, Importance: 9, World: ordinary},
			{Name: "Character Establishment", Description: "Introduction of hero's character", Keywords: []string{"personality", "traits", "background", "life"}, Importance: 8, World: ordinary},
		},
	},
	narrative.Stage{
		Number:      2,
		Name:        "Call to Adventure",
		Description: "Something disturbs the hero's ordinary life",
		Act:         narrative.ActBeginning,
		World:       ordinary,
		Color:       "#d0e8ff",
		Angle:       angle(2),
		Elements: []narrative.Element{
			{Name: "Inciting Incident", Description: "Event that starts the story", Keywords: []string{"message", "letter", "news", "suddenly", "discover"}, Importance: 9, World: ordinary},
			{Name: "Stakes", Description: "What the hero stands to lose", Keywords: []string{"danger", "threat", "risk", "must"}, Importance: 7, World: ordinary},
		},
	},
	narrative.Stage{
		Number:      3,
		Name:        "Refusal of the Call",
		Description: "The hero hesitates or refuses",
		Act:         narrative.ActBeginning,
		World:       ordinary,
		Color:       "#b9dcff",
		Angle:       angle(3),
		Elements: []narrative.Element{
			{Name: "Hesitation", Description: "Hero doubts the journey", Keywords: []string{"refuse", "hesitate", "doubt", "can't", "won't"}, Importance: 7, World: ordinary},
			{Name: "Fear", Description: "What holds the hero back", Keywords: []string{"fear", "afraid", "scared", "worry"}, Importance: 6, World: ordinary},
		},
	},
	narrative.Stage{
		Number:      4,
		Name:        "Meeting the Mentor",
		Description: "The hero gains guidance or a gift",
		Act:         narrative.ActBeginning,
		World:       ordinary,
		Color:       "#a3d0ff",
		Angle:       angle(4),
		Elements: []narrative.Element{
			{Name: "Mentor Figure", Description: "Someone who guides the hero", Keywords: []string{"mentor", "teacher", "wise", "old man", "guide"}, Importance: 8, World: ordinary},
			{Name: "Gift or Advice", Description: "What the mentor gives", Keywords: []string{"gift", "advice", "train", "sword", "map"}, Importance: 7, World: ordinary},
		},
	},
	narrative.Stage{
		Number:      5,
		Name:        "Crossing the First Threshold",
		Description: "The hero commits and enters the special world",
		Act:         narrative.ActBeginning,
		World:       special,
		Color:       "#fff4e0",
		Angle:       angle(5),
		Elements: []narrative.Element{
			{Name: "Commitment", Description: "Hero decides to go", Keywords: []string{"decide", "leave", "set out", "depart"}, Importance: 9, World: special},
			{Name: "New World Entry", Description: "First look at the special world", Keywords: []string{"gate", "border", "cross", "strange", "enter"}, Importance: 8, World: special},
		},
	},
	narrative.Stage{
		Number:      6,
		Name:        "Tests, Allies and Enemies",
		Description: "The hero learns the rules of the special world",
		Act:         narrative.ActMiddle,
		World:       special,
		Color:       "#ffe9c2",
		Angle:       angle(6),
		Elements: []narrative.Element{
			{Name: "Tests", Description: "Challenges that build skill", Keywords: []string{"test", "challenge", "trial", "fight"}, Importance: 8, World: special},
			{Name: "Allies and Enemies", Description: "Who is friend and who is foe", Keywords: []string{"friend", "ally", "enemy", "rival", "team"}, Importance: 8, World: special},
		},
	},
	narrative.Stage{
		Number:      7,
		Name:        "Approach to the Inmost Cave",
		Description: "Preparation for the central ordeal",
		Act:         narrative.ActMiddle,
		World:       special,
		Color:       "#ffdda3",
		Angle:       angle(7),
		Elements: []narrative.Element{
			{Name: "Preparation", Description: "Hero readies for the danger ahead", Keywords: []string{"prepare", "plan", "approach", "ready"}, Importance: 7, World: special},
			{Name: "Rising Tension", Description: "Danger grows closer", Keywords: []string{"dark", "deep", "cave", "closer", "tension"}, Importance: 6, World: special},
		},
	},
	narrative.Stage{
		Number:      8,
		Name:        "The Ordeal",
		Description: "The hero faces the greatest challenge",
		Act:         narrative.ActMiddle,
		World:       special,
		Color:       "#ffd085",
		Angle:       angle(8),
		Elements: []narrative.Element{
			{Name: "Crisis", Description: "Life or death moment", Keywords: []string{"death", "die", "battle", "crisis", "ordeal"}, Importance: 10, World: special},
			{Name: "Confrontation", Description: "Hero faces the central foe or fear", Keywords: []string{"face", "confront", "monster", "villain"}, Importance: 9, World: special},
		},
	},
	narrative.Stage{
		Number:      9,
		Name:        "The Reward",
		Description: "The hero seizes the prize",
		Act:         narrative.ActMiddle,
		World:       special,
		Color:       "#ffc466",
		Angle:       angle(9),
		Elements: []narrative.Element{
			{Name: "Prize", Description: "What the hero wins", Keywords: []string{"reward", "treasure", "prize", "win", "seize"}, Importance: 8, World: special},
			{Name: "Celebration", Description: "A moment of relief", Keywords: []string{"celebrate", "relief", "joy", "rest"}, Importance: 5, World: special},
		},
	},
	narrative.Stage{
		Number:      10,
		Name:        "The Road Back",
		Description: "The hero heads home, often pursued",
		Act:         narrative.ActEnd,
		World:       special,
		Color:       "#e8f8e8",
		Angle:       angle(10),
		Elements: []narrative.Element{
			{Name: "Return Decision", Description: "Hero chooses to go back", Keywords: []string{"return", "home", "back", "journey"}, Importance: 7, World: special},
			{Name: "Pursuit", Description: "Consequences follow the hero", Keywords: []string{"chase", "pursue", "escape", "follow"}, Importance: 6, World: special},
		},
	},
	narrative.Stage{
		Number:      11,
		Name:        "The Resurrection",
		Description: "A final test that purifies the hero",
		Act:         narrative.ActEnd,
		World:       special,
		Color:       "#cdeecd",
		Angle:       angle(11),
		Elements: []narrative.Element{
			{Name: "Final Test", Description: "The climactic last challenge", Keywords: []string{"final", "last", "climax", "sacrifice"}, Importance: 9, World: special},
			{Name: "Transformation", Description: "Hero is reborn changed", Keywords: []string{"change", "reborn", "transform", "new"}, Importance: 9, World: special},
		},
	},
	narrative.Stage{
		Number:      12,
		Name:        "Return with the Elixir",
		Description: "The hero returns home changed",
		Act:         narrative.ActEnd,
		World:       ordinary,
		Color:       "#b3e3b3",
		Angle:       angle(12),
		Elements: []narrative.Element{
			{Name: "Homecoming", Description: "Hero arrives back in the ordinary world", Keywords: []string{"home", "village", "family", "arrive"}, Importance: 8, World: ordinary},
			{Name: "Elixir", Description: "What the hero brings back to share", Keywords: []string{"elixir", "wisdom", "share", "heal", "gift"}, Importance: 8, World: ordinary},
		},
	},
)
