package seed

import (
	"time"

	"kodevidecamp/internal/models"
)

const day = 24 * time.Hour

func builtinFAQs(now time.Time) []models.FAQ {
	ts := func(daysAgo int) int64 { return now.Add(-time.Duration(daysAgo) * day).UnixMilli() }

	return []models.FAQ{
		{
			ID:        1,
			Category:  models.CategoryCourse,
			Priority:  models.PriorityHigh,
			Question:  "KodeVideoCamp의 강의는 어떤 방식으로 진행되나요?",
			Answer:    "KodeVideoCamp의 강의는 온라인 동영상 강의로 진행됩니다. 언제 어디서나 원하는 시간에 학습할 수 있으며, 실습 위주의 프로젝트 기반 학습을 통해 실무 능력을 기를 수 있습니다. 각 강의마다 과제와 프로젝트가 제공되며, 강사와의 1:1 피드백도 받을 수 있습니다.",
			Tags:      []string{"강의방식", "온라인", "동영상", "실습"},
			Helpful:   models.Helpful{Yes: 15, No: 2},
			Date:      "2025-01-10",
			Timestamp: ts(1),
		},
		{
			ID:        2,
			Category:  models.CategoryPayment,
			Priority:  models.PriorityHigh,
			Question:  "수강료 결제는 어떻게 하나요?",
			Answer:    "수강료는 신용카드, 계좌이체, 카카오페이 등 다양한 방법으로 결제 가능합니다. 일시불과 할부 결제 모두 지원하며, 학생 할인 혜택도 제공합니다. 결제 후 즉시 강의 수강이 가능합니다.",
			Tags:      []string{"결제", "수강료", "신용카드", "할부"},
			Helpful:   models.Helpful{Yes: 12, No: 1},
			Date:      "2025-01-09",
			Timestamp: ts(2),
		},
		{
			ID:        3,
			Category:  models.CategoryTechnical,
			Priority:  models.PriorityNormal,
			Question:  "강의 시청에 필요한 시스템 요구사항이 있나요?",
			Answer:    "기본적으로 인터넷 연결이 가능한 컴퓨터나 모바일 기기면 충분합니다. 권장 사양은 다음과 같습니다:\n\n• 운영체제: Windows 10 이상, macOS 10.14 이상, 또는 최신 Linux\n• 브라우저: Chrome, Firefox, Safari, Edge 최신 버전\n• 인터넷: 5Mbps 이상의 안정적인 연결\n• 코딩 실습을 위한 텍스트 에디터 (VS Code 권장)",
			Tags:      []string{"시스템요구사항", "브라우저", "인터넷", "에디터"},
			Helpful:   models.Helpful{Yes: 8, No: 0},
			Date:      "2025-01-08",
			Timestamp: ts(3),
		},
		{
			ID:        4,
			Category:  models.CategoryCourse,
			Priority:  models.PriorityNormal,
			Question:  "완전 초보자도 수강할 수 있나요?",
			Answer:    "네, 물론입니다! KodeVideCamp는 완전 초보자를 위한 기초 과정부터 고급 과정까지 체계적으로 구성되어 있습니다. 프로그래밍 경험이 전혀 없어도 차근차근 따라할 수 있도록 설계되었으며, 기초 개념부터 실무 프로젝트까지 단계별로 학습할 수 있습니다.",
			Tags:      []string{"초보자", "기초과정", "입문", "단계별"},
			Helpful:   models.Helpful{Yes: 20, No: 1},
			Date:      "2025-01-07",
			Timestamp: ts(4),
		},
		{
			ID:        5,
			Category:  models.CategoryGeneral,
			Priority:  models.PriorityNormal,
			Question:  "수료증은 발급되나요?",
			Answer:    "네, 강의를 완주하시면 수료증을 발급해드립니다. 수료증은 PDF 형태로 제공되며, 이력서나 포트폴리오에 활용하실 수 있습니다. 수료 조건은 전체 강의의 80% 이상 수강과 최종 프로젝트 제출입니다.",
			Tags:      []string{"수료증", "PDF", "이력서", "포트폴리오"},
			Helpful:   models.Helpful{Yes: 10, No: 0},
			Date:      "2025-01-06",
			Timestamp: ts(5),
		},
		{
			ID:        6,
			Category:  models.CategoryPayment,
			Priority:  models.PriorityUrgent,
			Question:  "환불 정책은 어떻게 되나요?",
			Answer:    "수강 시작 후 7일 이내에는 100% 환불이 가능합니다. 7일 이후에는 수강 진도에 따라 차등 환불됩니다:\n\n• 30% 미만 수강: 70% 환불\n• 30-50% 수강: 50% 환불\n• 50% 이상 수강: 환불 불가\n\n환불 신청은 고객센터를 통해 접수하실 수 있으며, 영업일 기준 3-5일 내에 처리됩니다.",
			Tags:      []string{"환불", "정책", "7일", "차등환불"},
			Helpful:   models.Helpful{Yes: 18, No: 3},
			Date:      "2025-01-05",
			Timestamp: ts(6),
		},
	}
}
