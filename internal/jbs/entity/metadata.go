package entity

import (
	"encoding/xml"
	"sort"
)

// Metadata 资源元数据，key/value 映射
//
// 这是跨资源共享的元数据编码约定：JSON 序列化为普通对象，
// XML 序列化为 <metadata><meta key="k">v</meta></metadata>。
// 卷、快照等所有带元数据的资源都复用这一约定
type Metadata map[string]string

// metaEntry 元数据的 XML 表示中的单个条目
type metaEntry struct {
	XMLName xml.Name `xml:"meta"`
	Key     string   `xml:"key,attr"`
	Value   string   `xml:",chardata"`
}

// MarshalXML 实现 xml.Marshaler
// 序列化为 <metadata><meta key="k">v</meta>...</metadata>
// key 按字典序输出，保证序列化结果稳定
func (m Metadata) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		entry := metaEntry{Key: k, Value: m[k]}
		if err := e.Encode(entry); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// UnmarshalXML 实现 xml.Unmarshaler
// 解析 <metadata><meta key="k">v</meta>...</metadata>，重复 key 后者覆盖前者
func (m *Metadata) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	result := Metadata{}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "meta" {
				var entry metaEntry
				if err := d.DecodeElement(&entry, &t); err != nil {
					return err
				}
				result[entry.Key] = entry.Value
				continue
			}
			// 跳过不认识的子节点
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name == start.Name {
				*m = result
				return nil
			}
		}
	}
}

// MetadataSource 卷记录上元数据的来源
//
// 卷记录可能以两种形态携带元数据：直接来自持久化层的 key/value 行列表，
// 或已经水合成映射的领域对象。两种形态必须产生完全一致的视图输出。
// 密封联合类型让视图转换只需要一次穷举的 type switch，
// 新增形态时编译期即可发现遗漏
type MetadataSource interface {
	metadataSource()
}

// MetadataPair 持久化层的单个元数据行
type MetadataPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MetadataPairs 以行列表形态携带的元数据（原始持久化形态）
type MetadataPairs []MetadataPair

func (MetadataPairs) metadataSource() {}

// MetadataMap 以映射形态携带的元数据（已水合的领域形态）
type MetadataMap map[string]string

func (MetadataMap) metadataSource() {}
