// Package types 定义共享的基础类型
package types

// BodyKind 定义世界中实体的种类
// 实体种类是封闭集合，只有玩家、入侵者和子弹三种
type BodyKind int

const (
	// BodyUnknown 未知实体类型
	BodyUnknown BodyKind = iota

	BodyPlayer  // 玩家飞船
	BodyInvader // 入侵者
	BodyBullet  // 子弹（玩家和入侵者共用）
)

// String 返回实体种类的可读名称，用于日志和调试信息
func (k BodyKind) String() string {
	switch k {
	case BodyPlayer:
		return "player"
	case BodyInvader:
		return "invader"
	case BodyBullet:
		return "bullet"
	default:
		return "unknown"
	}
}
