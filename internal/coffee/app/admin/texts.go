package admin

const (
	textJoinedCountReport = "На данный момент в текущем цикле %d пользователей."
	textReportSent        = "Уведомление о количестве пользователей в текущем цикле отправлено администраторам."
	textAdminsOnly        = "OOPS! Эта команда доступна только администраторам."
	textNoUsers           = "Нет данных пользователей."
	textUserCardsHeader   = "Карточки пользователей:\n"
	textUserCardEntry     = "Имя: %s\nПочта: %s\nДолжность: %s\n\n"
	textDatabaseCleared   = "База данных успешно очищена!"
)
