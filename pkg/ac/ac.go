package ac

import (
	"bytes"
	"strings"

	ahocorasick "github.com/anknown/ahocorasick"
)

var m *ahocorasick.Machine

// readRunes 将词典转换为rune切片数组, 满足Aho-Corasick自动机的输入格式
func readRunes(dict []string) (runes [][]rune) {
	for _, word := range dict {
		word = strings.ToLower(word) // 小写化, 匹配大小写不敏感
		l := bytes.TrimSpace([]byte(word))
		runes = append(runes, bytes.Runes(l))
	}
	return runes
}

// InitAc 根据屏蔽词词典初始化Aho-Corasick自动机
func InitAc(dict []string) error {
	m = new(ahocorasick.Machine)
	runes := readRunes(dict)
	if err := m.Build(runes); err != nil {
		return err
	}
	return nil
}

// AcSearch 对文本做多模式串匹配
// stopImmediately为true时命中第一个词即返回
// 返回是否命中以及命中的词列表
func AcSearch(findText string, dict []string, stopImmediately bool) (bool, []string) {
	if len(dict) == 0 || len(findText) == 0 {
		return false, nil
	}

	hits := m.MultiPatternSearch([]rune(strings.ToLower(findText)), stopImmediately)
	if len(hits) > 0 {
		words := make([]string, 0)
		for _, hit := range hits {
			words = append(words, string(hit.Word))
		}
		return true, words
	}
	return false, nil
}
