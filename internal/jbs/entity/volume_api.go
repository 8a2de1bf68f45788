package entity

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// ShowVolumeRequest 查询卷请求
type ShowVolumeRequest struct {
	VolumeID string `uri:"id" binding:"required" json:"-" xml:"-"`
}

// ShowVolumeResponse 查询卷响应
type ShowVolumeResponse struct {
	Volume *VolumeView `json:"volume"`
}

// MarshalXML 实现 xml.Marshaler
// XML 表示中卷视图本身就是带命名空间的根元素，不再包一层信封
func (r *ShowVolumeResponse) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return encodeVolumeElement(e, r.Volume, true)
}

// ListVolumesResponse 卷列表响应，摘要列表和详情列表共用
type ListVolumesResponse struct {
	Volumes []VolumeView `json:"volumes"`
}

// MarshalXML 实现 xml.Marshaler
// 序列化为 <volumes xmlns="..."><volume .../>...</volumes>
func (r *ListVolumesResponse) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	root := xml.StartElement{
		Name: xml.Name{Local: "volumes"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: VolumeXMLNamespace}},
	}
	if err := e.EncodeToken(root); err != nil {
		return err
	}
	for i := range r.Volumes {
		if err := encodeVolumeElement(e, &r.Volumes[i], false); err != nil {
			return err
		}
	}
	return e.EncodeToken(root.End())
}

// CreateVolumeParams 创建卷请求中 volume 节点的内容
// 指针字段用于区分「未提交」和「提交了空值」
type CreateVolumeParams struct {
	DisplayName        *string  `json:"display_name"`
	DisplayDescription *string  `json:"display_description"`
	SizeGB             *int64   `json:"size"`
	VolumeType         *string  `json:"volume_type"`
	AvailabilityZone   *string  `json:"availability_zone"`
	SnapshotID         *string  `json:"snapshot_id"`
	ImageRef           *string  `json:"imageRef"`
	Metadata           Metadata `json:"metadata"`
}

// CreateVolumeRequest 创建卷请求
type CreateVolumeRequest struct {
	Volume *CreateVolumeParams `json:"volume"`
}

// createAttributes XML 创建请求识别的属性允许列表
// 快照和镜像引用只在 JSON 表示中受支持
var createAttributes = map[string]struct{}{
	"display_name":        {},
	"display_description": {},
	"size":                {},
	"volume_type":         {},
	"availability_zone":   {},
}

// UnmarshalXML 实现 xml.Unmarshaler，解析 XML 格式的创建卷请求
//
// 根元素必须是 <volume>，标量参数编码为属性，只提取允许列表内的属性，
// 属性缺失时对应字段保持 nil，绝不填充空字符串；
// 可选的 <metadata> 子节点按共享的元数据约定解析
func (r *CreateVolumeRequest) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "volume" {
		return fmt.Errorf("unexpected root element %q, want volume", start.Name.Local)
	}

	params := &CreateVolumeParams{}
	for _, attr := range start.Attr {
		if _, ok := createAttributes[attr.Name.Local]; !ok {
			continue
		}
		switch attr.Name.Local {
		case "display_name":
			v := attr.Value
			params.DisplayName = &v
		case "display_description":
			v := attr.Value
			params.DisplayDescription = &v
		case "size":
			size, err := strconv.ParseInt(attr.Value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid size attribute %q: %w", attr.Value, err)
			}
			params.SizeGB = &size
		case "volume_type":
			v := attr.Value
			params.VolumeType = &v
		case "availability_zone":
			v := attr.Value
			params.AvailabilityZone = &v
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "metadata" {
				var md Metadata
				if err := md.UnmarshalXML(d, t); err != nil {
					return err
				}
				params.Metadata = md
				continue
			}
			// 跳过不认识的子节点
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name == start.Name {
				r.Volume = params
				return nil
			}
		}
	}
}

// CreateVolumeResponse 创建卷响应
type CreateVolumeResponse struct {
	Volume *VolumeView `json:"volume"`
}

// MarshalXML 实现 xml.Marshaler
func (r *CreateVolumeResponse) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return encodeVolumeElement(e, r.Volume, true)
}

// UpdateVolumeParams 更新卷请求中 volume 节点的内容
// 只有这三个字段可以更新，请求中提交的其他字段会被静默忽略
type UpdateVolumeParams struct {
	DisplayName        *string  `json:"display_name"`
	DisplayDescription *string  `json:"display_description"`
	Metadata           Metadata `json:"metadata"`
}

// UpdateVolumeRequest 更新卷请求
type UpdateVolumeRequest struct {
	VolumeID string              `uri:"id" json:"-" xml:"-"`
	Volume   *UpdateVolumeParams `json:"volume"`
}

// UnmarshalXML 实现 xml.Unmarshaler，解析 XML 格式的更新卷请求
// 与创建请求共用属性编码约定，但允许列表只包含可更新字段
func (r *UpdateVolumeRequest) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "volume" {
		return fmt.Errorf("unexpected root element %q, want volume", start.Name.Local)
	}

	params := &UpdateVolumeParams{}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "display_name":
			v := attr.Value
			params.DisplayName = &v
		case "display_description":
			v := attr.Value
			params.DisplayDescription = &v
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "metadata" {
				var md Metadata
				if err := md.UnmarshalXML(d, t); err != nil {
					return err
				}
				params.Metadata = md
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name == start.Name {
				r.Volume = params
				return nil
			}
		}
	}
}

// UpdateVolumeResponse 更新卷响应
type UpdateVolumeResponse struct {
	Volume *VolumeView `json:"volume"`
}

// MarshalXML 实现 xml.Marshaler
func (r *UpdateVolumeResponse) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return encodeVolumeElement(e, r.Volume, true)
}

// DeleteVolumeRequest 删除卷请求
// 删除在外部服务中异步完成，接口返回 202 Accepted、空响应体
type DeleteVolumeRequest struct {
	VolumeID string `uri:"id" binding:"required" json:"-" xml:"-"`
}
