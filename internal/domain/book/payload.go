package book

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Payload 写请求的原始字段
// JSON请求体和表单请求体都会先解码成Payload再交给领域服务
type Payload map[string]any

// 库存相关的请求字段
const (
	KeyInventory          = "inventory"
	KeyOwned              = "owned"
	KeyAvailable          = "available"
	KeyInventoryOwned     = "inventory.owned"     // 表单提交时的扁平写法
	KeyInventoryAvailable = "inventory.available" // 表单提交时的扁平写法
)

// NormalizeInventory 把扁平的inventory.owned/inventory.available
// 收拢成嵌套的inventory对象
//
// 规则：
//   - 已有嵌套inventory时以它为准，忽略扁平字段
//   - 只提交了其中一个扁平字段时，嵌套对象里也只有这一个字段
//   - 返回新的Payload，不修改入参
func NormalizeInventory(p Payload) Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = v
	}

	if _, nested := p[KeyInventory]; nested {
		return out
	}

	inv := map[string]any{}
	if v, ok := p[KeyInventoryOwned]; ok {
		inv[KeyOwned] = v
	}
	if v, ok := p[KeyInventoryAvailable]; ok {
		inv[KeyAvailable] = v
	}
	if len(inv) > 0 {
		out[KeyInventory] = inv
	}
	return out
}

// TouchesInventory 请求是否涉及库存(任意一种写法)
func TouchesInventory(p Payload) bool {
	for _, k := range []string{KeyInventory, KeyInventoryOwned, KeyInventoryAvailable} {
		if _, ok := p[k]; ok {
			return true
		}
	}
	return false
}

// inventoryPatch 请求中提交的库存字段，nil表示未提交
type inventoryPatch struct {
	Owned     *int
	Available *int
}

// parseInventory 从归一化后的Payload中取出库存字段
// inventory不是对象、或者字段不是整数时返回ErrInvalidInventory
func parseInventory(p Payload) (inventoryPatch, error) {
	var patch inventoryPatch

	raw, ok := p[KeyInventory].(map[string]any)
	if !ok {
		return patch, ErrInvalidInventory
	}

	if v, ok := raw[KeyOwned]; ok {
		n, ok := toInt(v)
		if !ok {
			return patch, ErrInvalidInventory
		}
		patch.Owned = &n
	}
	if v, ok := raw[KeyAvailable]; ok {
		n, ok := toInt(v)
		if !ok {
			return patch, ErrInvalidInventory
		}
		patch.Available = &n
	}
	return patch, nil
}

// toInt 接受json.Number、Go整数、整值浮点数和数字字符串
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.Atoi(n.String())
		return i, err == nil
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}
