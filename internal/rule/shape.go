package rule

// ShapeKind 定义牌型，声明顺序即识别优先级
type ShapeKind int

const (
	Invalid ShapeKind = iota

	Solo   // 单张
	Pair   // 对子
	Trio   // 三张不带
	Bomb   // 炸弹（四张相同）
	Rocket // 王炸（双王）

	SoloChain   // 顺子（5-12 张连续单张）
	PairSisters // 连对（3 对或以上）
	TrioChain   // 飞机不带翅膀（2 个或以上连续三张）

	TrioKicksSolo     // 三带一
	TrioKicksPair     // 三带二
	AirplaneKicksSolo // 飞机带单
	AirplaneKicksPair // 飞机带对

	FourKicksDualSolo // 四带二
	FourKicksDualPair // 四带两对
)

// shapeNames 牌型名称映射表
var shapeNames = map[ShapeKind]string{
	Solo:              "单张",
	Pair:              "对子",
	Trio:              "三张",
	Bomb:              "炸弹",
	Rocket:            "王炸",
	SoloChain:         "顺子",
	PairSisters:       "连对",
	TrioChain:         "飞机",
	TrioKicksSolo:     "三带一",
	TrioKicksPair:     "三带二",
	AirplaneKicksSolo: "飞机带单",
	AirplaneKicksPair: "飞机带对",
	FourKicksDualSolo: "四带二",
	FourKicksDualPair: "四带两对",
}

func (k ShapeKind) String() string {
	if name, ok := shapeNames[k]; ok {
		return name
	}
	return "无效"
}

// Valid 是否为 14 种牌型之一
func (k ShapeKind) Valid() bool {
	return k >= Solo && k <= FourKicksDualPair
}
