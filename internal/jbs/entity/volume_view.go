package entity

import "encoding/xml"

// VolumeXMLNamespace 卷资源 XML 表示的命名空间
const VolumeXMLNamespace = "https://jimyag.github.io/jbs/api/block-storage/1.0/content"

// AttachmentView 附加信息视图
// 约定：附加的 id 等于卷的 id（一个卷最多只有一个附加）
// XML 表示中标量字段编码为属性
type AttachmentView struct {
	ID       string `json:"id"                 xml:"id,attr"`
	VolumeID string `json:"volume_id"          xml:"volume_id,attr"`
	ServerID string `json:"server_id"          xml:"server_id,attr"`
	Device   string `json:"device,omitempty"   xml:"device,attr,omitempty"` // 挂载点，记录上没有时整个字段省略
}

// VolumeView 卷视图，按请求构造的输出形态
//
// JSON 表示为普通对象；XML 表示中标量字段编码为 <volume> 元素的属性，
// 附加列表编码为 <attachments> 子集合，元数据复用共享的元数据编码约定
type VolumeView struct {
	ID                 string           `json:"id"                  xml:"id,attr"`
	Status             string           `json:"status"              xml:"status,attr"`
	SizeGB             int64            `json:"size"                xml:"size,attr"`
	AvailabilityZone   string           `json:"availability_zone"   xml:"availability_zone,attr"`
	CreatedAt          string           `json:"created_at"          xml:"created_at,attr"`
	DisplayName        string           `json:"display_name"        xml:"display_name,attr"`
	DisplayDescription string           `json:"display_description" xml:"display_description,attr"`
	VolumeType         *string          `json:"volume_type"         xml:"volume_type,attr,omitempty"` // nil 表示没有类型引用，序列化为 null
	SnapshotID         string           `json:"snapshot_id"         xml:"snapshot_id,attr,omitempty"`
	ImageID            string           `json:"image_id,omitempty"  xml:"image_id,attr,omitempty"` // 仅镜像创建请求会带上
	Attachments        []AttachmentView `json:"attachments"         xml:"attachments>attachment"`  // 当前模型最多一个，容器支持任意数量
	Metadata           Metadata         `json:"metadata"            xml:"metadata"`                // 始终存在，空映射也会输出
}

// volumeStartElement 构造 <volume> 起始元素
// 根元素带命名空间，列表中的子元素继承外层命名空间，不再重复
func volumeStartElement(namespaced bool) xml.StartElement {
	start := xml.StartElement{Name: xml.Name{Local: "volume"}}
	if namespaced {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: VolumeXMLNamespace}}
	}
	return start
}

// encodeVolumeElement 将卷视图编码为一个 <volume> 元素
// 标量字段由结构体标签编码为属性，附加集合与元数据编码为子节点
func encodeVolumeElement(e *xml.Encoder, v *VolumeView, namespaced bool) error {
	return e.EncodeElement(v, volumeStartElement(namespaced))
}
