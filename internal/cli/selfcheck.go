package cli

// Data for the selfcheck mode: seventeen months of synthetic traffic
// for one flagged sender, with some unrelated rows mixed in. The last
// three months are dropped by the default split as unreliable.
const (
	selfCheckSender    = "jsmith"
	selfCheckRecipient = "partner@external.example"
)

const selfCheckLog = `date,user,to,size
2013-08-03 14:26:04,jsmith,partner@external.example,67493
2013-08-03 15:36:00,mlopez,partner@external.example,356992
2013-08-04 11:05:35,jsmith,partner@external.example,1147950
2013-08-08 14:03:52,jsmith,partner@external.example,131571
2013-08-18 17:07:14,jsmith,partner@external.example,814602
2013-08-22 10:40:00,jsmith,alice@corp.example,355658
2013-09-06 10:34:07,jsmith,partner@external.example,117882
2013-09-11 17:19:35,jsmith,partner@external.example,525548
2013-09-15 18:11:06,jsmith,partner@external.example,1323284
2013-10-08 18:34:27,jsmith,partner@external.example,70448
2013-10-09 10:50:00,jsmith,alice@corp.example,144249
2013-10-17 13:29:37,jsmith,partner@external.example,514904
2013-10-21 15:23:19,jsmith,partner@external.example,408076
2013-11-11 17:04:07,jsmith,partner@external.example,360007
2013-11-12 16:26:10,jsmith,partner@external.example,37788
2013-11-16 13:09:59,jsmith,partner@external.example,138609
2013-11-23 15:04:00,mlopez,partner@external.example,342592
2013-11-25 15:26:02,jsmith,partner@external.example,228569
2013-12-04 15:44:42,jsmith,partner@external.example,311041
2013-12-10 09:03:46,jsmith,partner@external.example,320237
2013-12-16 12:41:36,jsmith,partner@external.example,454208
2013-12-23 10:52:00,jsmith,alice@corp.example,283644
2014-01-07 17:07:31,jsmith,partner@external.example,776773
2014-01-13 08:13:49,jsmith,partner@external.example,961488
2014-01-16 12:08:47,jsmith,partner@external.example,376128
2014-02-04 10:11:00,jsmith,alice@corp.example,129323
2014-02-06 12:45:26,jsmith,partner@external.example,204754
2014-02-09 15:42:00,mlopez,partner@external.example,172335
2014-02-15 13:43:56,jsmith,partner@external.example,1141372
2014-02-19 14:14:09,jsmith,partner@external.example,1396111
2014-03-10 08:09:26,jsmith,partner@external.example,1164611
2014-03-11 16:23:39,jsmith,partner@external.example,1414748
2014-04-16 10:10:00,jsmith,alice@corp.example,107634
2014-04-16 14:25:25,jsmith,partner@external.example,370238
2014-04-19 14:06:30,jsmith,partner@external.example,409460
2014-04-23 18:25:03,jsmith,partner@external.example,282231
2014-04-26 11:04:13,jsmith,partner@external.example,318780
2014-05-05 17:01:04,jsmith,partner@external.example,595939
2014-05-13 11:39:24,jsmith,partner@external.example,101563
2014-05-13 15:38:00,mlopez,partner@external.example,240926
2014-05-19 10:40:16,jsmith,partner@external.example,562266
2014-06-04 13:47:16,jsmith,partner@external.example,933700
2014-06-05 15:53:44,jsmith,partner@external.example,438116
2014-06-06 10:33:01,jsmith,partner@external.example,454894
2014-06-08 10:33:00,jsmith,alice@corp.example,239662
2014-07-18 12:41:55,jsmith,partner@external.example,1205310
2014-07-26 09:44:54,jsmith,partner@external.example,1596698
2014-08-19 16:21:40,jsmith,partner@external.example,2010625
2014-08-26 11:39:51,jsmith,partner@external.example,1259369
2014-08-27 10:48:00,jsmith,alice@corp.example,152312
2014-08-27 15:15:00,mlopez,partner@external.example,260074
2014-09-02 17:22:28,jsmith,partner@external.example,1122919
2014-09-08 13:23:05,jsmith,partner@external.example,279452
2014-09-10 11:06:14,jsmith,partner@external.example,688828
2014-09-17 15:12:21,jsmith,partner@external.example,1021824
2014-10-04 11:30:56,jsmith,partner@external.example,703057
2014-10-05 10:27:50,jsmith,partner@external.example,401098
2014-10-14 18:21:05,jsmith,partner@external.example,546241
2014-10-23 14:29:25,jsmith,partner@external.example,668933
2014-10-25 10:05:00,jsmith,alice@corp.example,133286
2014-11-13 15:09:00,mlopez,partner@external.example,337655
2014-11-16 18:09:39,jsmith,partner@external.example,2093194
2014-11-20 17:30:42,jsmith,partner@external.example,58065
2014-12-02 16:15:48,jsmith,partner@external.example,615587
2014-12-08 17:20:16,jsmith,partner@external.example,498952
2014-12-10 16:26:53,jsmith,partner@external.example,884639
2014-12-11 10:03:58,jsmith,partner@external.example,411048
2014-12-25 10:22:00,jsmith,alice@corp.example,290208
`
