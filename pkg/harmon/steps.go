package harmon

import (
	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
)

func criteria(names ...string) []narrative.Element {
	elements := make([]narrative.Element, 0, len(names))
	for _, n := range names {
		elements = append(elements, narrative.Element{Name: n})
	}
	return elements
}

var steps = narrative.MustCatalog(
	narrative.Stage{
		Number:      1,
		Name:        "Comfort Zone",
		LocalName:   "Зона комфорта",
		Description: "The character in a familiar situation",
		Color:       "#e74c3c",
		Act:         narrative.ActBeginning,
		Elements:    criteria("character establishment", "initial world state", "status quo"),
	},
	narrative.Stage{
		Number:      2,
		Name:        "Need or Desire",
		LocalName:   "Потребность или желание",
		Description: "The character wants something",
		Color:       "#3498db",
		Act:         narrative.ActBeginning,
		Elements:    criteria("motivation clarity", "stakes establishment", "goal definition"),
	},
	narrative.Stage{
		Number:      3,
		Name:        "Unfamiliar Situation",
		LocalName:   "Незнакомая ситуация",
		Description: "The character enters an unfamiliar situation",
		Color:       "#2ecc71",
		Act:         narrative.ActMiddle,
		Elements:    criteria("comfort zone departure", "new challenges", "initial adaptation"),
	},
	narrative.Stage{
		Number:      4,
		Name:        "Search and Adaptation",
		LocalName:   "Поиск и адаптация",
		Description: "The character adapts to it",
		Color:       "#f39c12",
		Act:         narrative.ActMiddle,
		Elements:    criteria("challenge handling", "skill development", "world exploration"),
	},
	narrative.Stage{
		Number:      5,
		Name:        "Getting What They Wanted",
		LocalName:   "Получение желаемого",
		Description: "The character gets what they wanted",
		Color:       "#9b59b6",
		Act:         narrative.ActMiddle,
		Elements:    criteria("goal achievement", "price recognition", "consequence understanding"),
	},
	narrative.Stage{
		Number:      6,
		Name:        "Paying the Price",
		LocalName:   "Плата за него",
		Description: "The character pays a heavy price for it",
		Color:       "#e67e22",
		Act:         narrative.ActMiddle,
		Elements:    criteria("sacrifice measurement", "cost evaluation", "change catalyst"),
	},
	narrative.Stage{
		Number:      7,
		Name:        "Return to Familiar",
		LocalName:   "Возвращение к привычному",
		Description: "The character returns to their familiar situation",
		Color:       "#1abc9c",
		Act:         narrative.ActEnd,
		Elements:    criteria("integration of change", "world comparison", "growth recognition"),
	},
	narrative.Stage{
		Number:      8,
		Name:        "Changed State",
		LocalName:   "Способность меняться",
		Description: "The character has changed",
		Color:       "#34495e",
		Act:         narrative.ActEnd,
		Elements:    criteria("character evolution", "lesson application", "new normal"),
	},
)
