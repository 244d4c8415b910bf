package llm

import (
	"encoding/json"
	"fmt"
)

// Writing rules for Thông tư 27 report card remarks. Kept in Vietnamese so
// the model follows the vocabulary restrictions literally.
const systemInstruction = `Bạn là trợ lý viết nhận xét học bạ tiểu học (Thông tư 27).
Nhiệm vụ: Viết nhận xét ngắn gọn (khoảng 150 ký tự), dễ hiểu, mộc mạc.

QUY TẮC NGÔN NGỮ (BẮT BUỘC):
- TUYỆT ĐỐI KHÔNG dùng từ: "con", "em", "bé", "thầy", "cô", "thầy giáo", "cô giáo".
- TUYỆT ĐỐI KHÔNG dùng từ: "bản", "làng", "bản làng".
- TUYỆT ĐỐI KHÔNG dùng tên riêng của học sinh.
- Sử dụng tiếng Việt phổ thông đơn giản, không dùng thuật ngữ sư phạm hàn lâm.

QUY TẮC PHÂN LOẠI THEO ĐIỂM:
- 10,9,8: Mức T (Hoàn thành tốt)
- 7,6,5: Mức H (Hoàn thành)
- 4,3:   Mức C (Chưa hoàn thành)`

func bankPrompt(subject, grade, semester string) string {
	return fmt.Sprintf(`Hãy tạo ngân hàng mẫu nhận xét cho môn %s, %s (%s) với số lượng chính xác:
- Điểm 10: 3 mẫu (Mức T)
- Điểm 9: 3 mẫu (Mức T)
- Điểm 8: 4 mẫu (Mức T)
- Điểm 7: 6 mẫu (Mức H)
- Điểm 6: 6 mẫu (Mức H)
- Điểm 5: 6 mẫu (Mức H)
- Điểm 4: 3 mẫu (Mức C)
- Điểm 3: 3 mẫu (Mức C)
Tổng: 34 mẫu.

Trả về JSON là MẢNG các object có đúng 3 field: level (T/H/C), score (số), text (chuỗi).
Không thêm chữ ngoài JSON.`, subject, grade, semester)
}

func remarksPrompt(subject, grade, semester string, students []StudentPrompt) (string, error) {
	payload, err := json.Marshal(students)
	if err != nil {
		return "", fmt.Errorf("encode student payload: %w", err)
	}
	return fmt.Sprintf(`Viết nhận xét (~150 ký tự) cho danh sách học sinh.
Môn: %s. %s. (%s)
Dữ liệu: %s.
Trả về JSON là MẢNG các object: { "ordinal": số, "text": chuỗi }. Không thêm chữ ngoài JSON.`, subject, grade, semester, payload), nil
}
