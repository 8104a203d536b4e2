package csrange

import (
	"slices"
	"strings"
)

// knownInterfaceTypes 已知接口类型的规范写法，只读。
var knownInterfaceTypes = []string{
	"Ethernet",
	"FastEthernet",
	"FortyGigabitEthernet",
	"GigabitEthernet",
	"HundredGigabitEthernet",
	"Loopback",
	"Port-channel",
	"TenGigabitEthernet",
	"Tunnel",
	"TwentyfiveGigabitEthernet",
	"Vlan",
}

// KnownInterfaceTypes 返回内置接口类型表的副本。
func KnownInterfaceTypes() []string {
	return slices.Clone(knownInterfaceTypes)
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// splitInterfaceHead 将上下文拆成接口类型部分与剩余部分。
//
// 类型部分由字母组成，"-" 仅在其后紧跟字母时并入（Port-channel）。
//
//	"Gi5/"          → "Gi", "5/"
//	"Gi-1/"         → "Gi", "-1/"
//	"Port-channel"  → "Port-channel", ""
//	"5/"            → "", "5/"
func splitInterfaceHead(context string) (string, string) {
	if context == "" || !isLetter(context[0]) {
		return "", context
	}

	i := 1
	for i < len(context) {
		switch {
		case isLetter(context[i]):
			i++
		case context[i] == '-' && i+1 < len(context) && isLetter(context[i+1]):
			i += 2
		default:
			return context[:i], context[i:]
		}
	}

	return context, ""
}

// resolveInterface 将缩写的接口类型展开为规范写法。
//
// 大小写不敏感；与某个类型完全相同时直接命中，否则仅在前缀唯一匹配时展开。
// 无法展开（无字母前缀、无匹配、多个匹配）时原样返回。
//
//	"Gi5/"  → "GigabitEthernet5/"
//	"F3/"   → "F3/" (FastEthernet / FortyGigabitEthernet 冲突)
func resolveInterface(context string, types []string) string {
	head, tail := splitInterfaceHead(context)
	if head == "" {
		return context
	}

	var found string
	matches := 0
	for _, name := range types {
		if strings.EqualFold(name, head) {
			return name + tail
		}
		if len(name) >= len(head) && strings.EqualFold(name[:len(head)], head) {
			found = name
			matches++
		}
	}

	if matches != 1 {
		return context
	}

	return found + tail
}

// ResolveInterface 使用内置类型表展开接口缩写，见 [Expander] 的解析规则。
func ResolveInterface(context string) string {
	return resolveInterface(context, knownInterfaceTypes)
}
