package initializer

import "legendcore/internal/model"

// cardSpec is one row of the standard 108-card package spec.md §6 names.
type cardSpec struct {
	subType  model.CardSubType
	cardType model.CardType
	defID    string
	name     string
	count    int
}

// standardPackage is the card count table for the "Standard" deck config
// pack, totalling 108 cards, per spec.md §6.
var standardPackage = []cardSpec{
	{model.Slash, model.Basic, "slash", "Slash", 36},
	{model.Dodge, model.Basic, "dodge", "Dodge", 19},
	{model.Peach, model.Basic, "peach", "Peach", 6},
	{model.WuzhongShengyou, model.Trick, "wuzhong_shengyou", "Wu Zhong Sheng You", 2},
	{model.GuoheChaiqiao, model.Trick, "guohe_chaiqiao", "Guo He Chai Qiao", 5},
	{model.ShunshouQianyang, model.Trick, "shunshou_qianyang", "Shun Shou Qian Yang", 4},
	{model.Lebusishu, model.Trick, "lebusishu", "Le Bu Si Shu", 3},
	{model.Shandian, model.Trick, "shandian", "Shan Dian", 1},
	{model.NanmanRushin, model.Trick, "nanman_rushin", "Nan Man Ru Qin", 2},
	{model.WanjianQifa, model.Trick, "wanjian_qifa", "Wan Jian Qi Fa", 2},
	{model.Harvest, model.Trick, "harvest", "Harvest", 2},
	{model.JieDaoShaRen, model.Trick, "jiedaosharen", "Jie Dao Sha Ren", 3},
	{model.Wuxiekeji, model.Trick, "wuxiekeji", "Wu Xie Ke Ji", 4},
	{model.TaoyuanJieyi, model.Trick, "taoyuan_jieyi", "Tao Yuan Jie Yi", 2},
	{model.Weapon, model.Equip, "qinggang_sword", "Qinggang Sword", 1},
	{model.Weapon, model.Equip, "generic_weapon", "Blade", 7},
	{model.Armor, model.Equip, "renwang_shield", "Renwang Shield", 1},
	{model.Armor, model.Equip, "generic_armor", "Silver Lion Armor", 4},
	{model.OffensiveHorse, model.Equip, "offensive_horse", "Red Hare", 2},
	{model.DefensiveHorse, model.Equip, "defensive_horse", "The Hex Mark", 2},
}

var allSuits = [4]model.Suit{model.Spade, model.Club, model.Heart, model.Diamond}

// BuildStandardDeck produces the 108-card "Standard" package with
// sequential ids minted from nextID, cycling suits and ranks across each
// subtype's cards so red/black and high/low variety exists for rules that
// key off a card's own face (Renwang Shield, Shandian's reveal check).
func BuildStandardDeck(nextID func() int) []model.Card {
	var cards []model.Card
	suitCursor, rankCursor := 0, 1
	for _, spec := range standardPackage {
		for i := 0; i < spec.count; i++ {
			cards = append(cards, model.Card{
				Id:           nextID(),
				DefinitionId: spec.defID,
				Name:         spec.name,
				CardType:     spec.cardType,
				CardSubType:  spec.subType,
				Suit:         allSuits[suitCursor%len(allSuits)],
				Rank:         model.Rank(rankCursor),
			})
			suitCursor++
			rankCursor++
			if rankCursor > 13 {
				rankCursor = 1
			}
		}
	}
	return cards
}
