package app

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// The notification mail mirrors what the operations inbox expects: booking
// code up top, customer contacts, selection details, recomputed total with
// the tax/fee disclaimer. All user-supplied strings pass through
// html/template's contextual escaping before they reach the markup.
var notificationTmpl = template.Must(template.New("booking").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Tahoma, sans-serif; margin: 0; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: linear-gradient(135deg, #15803d 0%, #22c55e 100%); padding: 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px;">🌿 Đảo Xanh Ecofarm</h1>
      <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0; font-size: 14px;">Thông báo đặt dịch vụ mới</p>
    </div>
    <div style="background-color: #f0fdf4; padding: 25px; text-align: center; border-bottom: 3px solid #22c55e;">
      <p style="margin: 0 0 8px 0; color: #666; font-size: 14px;">Mã đặt chỗ</p>
      <p style="margin: 0; color: #15803d; font-size: 32px; font-weight: bold; letter-spacing: 2px;">{{.BookingCode}}</p>
    </div>
    <div style="padding: 30px;">
      <h2 style="color: #333; margin: 0 0 20px 0; font-size: 20px;">Thông tin khách hàng</h2>
      <table style="width: 100%; border-collapse: collapse; margin-bottom: 30px;">
        <tr><td style="padding: 12px; color: #666; width: 40%;">Họ tên</td><td style="padding: 12px; font-weight: 600;">{{.Name}}</td></tr>
        <tr><td style="padding: 12px; color: #666;">Email</td><td style="padding: 12px;"><a href="mailto:{{.Email}}" style="color: #15803d;">{{.Email}}</a></td></tr>
        <tr><td style="padding: 12px; color: #666;">Số điện thoại</td><td style="padding: 12px;"><a href="tel:{{.Phone}}" style="color: #15803d;">{{.Phone}}</a></td></tr>
      </table>
      <h2 style="color: #333; margin: 0 0 20px 0; font-size: 20px;">Chi tiết đặt dịch vụ</h2>
      <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="padding: 12px; color: #666; width: 40%;">Loại dịch vụ</td><td style="padding: 12px; font-weight: 600; color: #15803d;">{{.ServiceName}}</td></tr>
        {{if .PackageLine}}<tr><td style="padding: 12px; color: #666;">Gói dịch vụ</td><td style="padding: 12px; font-weight: 500;">{{.PackageLine}}</td></tr>{{end}}
        {{if .AccommodationType}}<tr><td style="padding: 12px; color: #666;">Loại lưu trú</td><td style="padding: 12px; font-weight: 500;">{{.AccommodationType}}</td></tr>{{end}}
        {{if .AddBBQ}}<tr><td style="padding: 12px; color: #666;">BBQ lẩu nướng</td><td style="padding: 12px; font-weight: 500; color: #16a34a;">Có</td></tr>{{end}}
        <tr><td style="padding: 12px; color: #666;">Ngày bắt đầu</td><td style="padding: 12px; font-weight: 500;">{{.CheckIn}}</td></tr>
        <tr><td style="padding: 12px; color: #666;">Ngày kết thúc</td><td style="padding: 12px; font-weight: 500;">{{.CheckOut}}</td></tr>
        <tr><td style="padding: 12px; color: #666;">Số khách</td><td style="padding: 12px; font-weight: 500;">{{.Guests}}</td></tr>
        {{if .Total}}
        <tr style="background-color: #f0fdf4;">
          <td style="padding: 16px 12px; color: #15803d; font-weight: 600; font-size: 16px;">💰 Tổng tiền</td>
          <td style="padding: 16px 12px; font-weight: 700; color: #15803d; font-size: 18px;">{{.Total}}</td>
        </tr>
        <tr><td colspan="2" style="padding: 8px 12px; color: #666; font-size: 12px; font-style: italic;">* Giá đã bao gồm 8% VAT và 5% phí dịch vụ</td></tr>
        {{end}}
        {{if .Notes}}<tr><td style="padding: 12px; color: #666;">Ghi chú</td><td style="padding: 12px;">{{.Notes}}</td></tr>{{end}}
      </table>
    </div>
    <div style="background-color: #f9fafb; padding: 20px; text-align: center; border-top: 1px solid #e5e5e5;">
      <p style="margin: 0; color: #666; font-size: 12px;">Email được gửi tự động từ hệ thống đặt dịch vụ Đảo Xanh Ecofarm</p>
      <p style="margin: 8px 0 0 0; color: #999; font-size: 11px;">Thôn Quỳnh Ngọc 1, Xã Ea Na, tỉnh ĐắkLắk | 0961 898 972 | daoxanh.com.vn</p>
    </div>
  </div>
</body>
</html>`))

type notificationData struct {
	BookingCode       string
	Name              string
	Email             string
	Phone             string
	ServiceName       string
	PackageLine       string
	AccommodationType string
	AddBBQ            bool
	CheckIn           string
	CheckOut          string
	Guests            string
	Total             string // empty hides the price row (team-building, incomplete)
	Notes             string
}

func renderNotification(sub BookingSubmission, total int64) (string, error) {
	data := notificationData{
		BookingCode:       sub.BookingCode,
		Name:              sub.Name,
		Email:             sub.Email,
		Phone:             sub.Phone,
		ServiceName:       sub.ServiceName,
		AccommodationType: sub.AccommodationType,
		AddBBQ:            sub.AddBBQ,
		CheckIn:           formatDateVN(sub.CheckIn),
		CheckOut:          formatDateVN(sub.CheckOut),
		Guests:            formatGuests(sub.AdultsCount, sub.ChildrenCount),
		Notes:             sub.Notes,
	}
	if sub.PackageName != "" {
		data.PackageLine = sub.PackageName
		if sub.PackageSubtitle != "" {
			data.PackageLine += " - " + sub.PackageSubtitle
		}
	}
	if total > 0 {
		data.Total = FormatPrice(total)
	}

	var b strings.Builder
	if err := notificationTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatPrice renders a VND amount the vi-VN way: dot-grouped digits with a
// trailing đ, e.g. 2378000 -> "2.378.000đ".
func FormatPrice(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out + "đ"
}

var weekdaysVN = [...]string{"Chủ Nhật", "Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy"}

func formatDateVN(s string) string {
	if s == "" {
		return "Chưa xác định"
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		// pass unparseable dates through untouched rather than hiding them
		return s
	}
	return fmt.Sprintf("%s, %d tháng %d, %d", weekdaysVN[t.Weekday()], t.Day(), int(t.Month()), t.Year())
}

func formatGuests(adults, children int) string {
	out := fmt.Sprintf("%d người lớn", adults)
	if children > 0 {
		out += fmt.Sprintf(", %d trẻ em", children)
	}
	return out
}
