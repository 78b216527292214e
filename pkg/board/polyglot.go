package board

// Polyglot book-hashing keys. The table layout follows the Polyglot convention:
// 64 keys per piece kind in the order black pawn, white pawn, black knight,
// white knight, black bishop, white bishop, black rook, white rook, black queen,
// white queen, black king, white king (indexed 8*rank+file from white's view),
// then four castling keys (K, Q, k, q), eight en-passant file keys (a-h) and a
// single white-to-move key.
var polyglotRandom64 = [781]uint64{
	0x9D39247E33776D41, 0x2AF7398005AAA5C7, 0x44DB015024623547, 0x9C15F73E62A76AE2,
	0x75834465489C0C89, 0x3290AC3A203001BF, 0x0FBBAD1F61042279, 0xE83A908FF2FB60CA,
	0x0D7E765D58755C10, 0x1A083822CEAFE02D, 0x9605D5F0E25EC3B0, 0xD021FF5CD13A2ED5,
	0x40BDF15D4A672E32, 0x011355146FD56395, 0x5DB4832046F3D9E5, 0x239F8B2D7FF719CC,
	0x05D1A1AE85B49AA1, 0x679F848F6E8FC971, 0x7449BBFF801FED0B, 0x7D11CDB1C3B7ADF0,
	0x82C7709E781EB7CC, 0xF3218F1C9510786C, 0x331478F3AF51BBE6, 0x4BB38DE5E7219443,
	0xAA649C6EBCFD50FC, 0x8DBD98A352AFD40B, 0x87D2074B81D79217, 0x19F3C751D3E92AE1,
	0xB4AB30F062B19ABF, 0x7B0500AC42047AC4, 0xC9452CA81A09D85D, 0x24AA6C514DA27500,
	0x4C9F34427501B447, 0x14A68FD73C910841, 0xA71B9B83461CBD93, 0x03488B95B0F1850F,
	0x637B2B34FF93C040, 0x09D1BC9A3DD90A94, 0x3575668334A1DD3B, 0x735E2B97A4C45A23,
	0x18727070F1BD400B, 0x1FCBACD259BF02E7, 0xD310A7C2CE9B6555, 0xBF983FE0FE5D8244,
	0x9F74D14F7454A824, 0x51EBDC4AB9BA3035, 0x5C82C505DB9AB0FA, 0xFCF7FE8A3430B241,
	0x3253A729B9BA3DDE, 0x8C74C368081B3075, 0xB9BC6C87167C33E7, 0x7EF48F2B83024E20,
	0x11D505D4C351BD7F, 0x6568FCA92C76A243, 0x4DE0B0F40F32A7B8, 0x96D693460CC37E5D,
	0x42E240CB63689F2F, 0x6D2BDCDAE2919661, 0x42880B0236E4D951, 0x5F0F4A5898171BB6,
	0x39F890F579F92F88, 0x93C5B5F47356388B, 0x63DC359D8D231B78, 0xEC16CA8AEA98AD76,
	0x5355F900C2A82DC7, 0x07FB9F855A997142, 0x5093417AA8A7ED5E, 0x7BCBC38DA25A7F3C,
	0x19FC8A768CF4B6D4, 0x637A7780DECFC0D9, 0x8249A47AEE0E41F7, 0x79AD695501E7D1E8,
	0x14ACBAF4777D5776, 0xF145B6BECCDEA195, 0xDABF2AC8201752FC, 0x24C3C94DF9C8D3F6,
	0xBB6E2924F03912EA, 0x0CE26C0B95C980D9, 0xA49CD132BFBF7CC4, 0xE99D662AF4243939,
	0x27E6AD7891165C3F, 0x8535F040B9744FF1, 0x54B3F4FA5F40D873, 0x72B12C32127FED2B,
	0xEE954D3C7B411F47, 0x9A85AC909A24EAA1, 0x70AC4CD9F04F21F5, 0xF9B89D3E99A075C2,
	0x87B3E2B2B5C907B1, 0xA366E5B8C54F48B8, 0xAE4A9346CC3F7CF2, 0x1920C04D47267BBD,
	0x87BF02C6B49E2AE9, 0x092237AC237F3859, 0xFF07F64EF8ED14D0, 0x8DE8DCA9F03CC54E,
	0x9C1633264DB49C89, 0xB3F22C3D0B0B38ED, 0x390E5FB44D01144B, 0x5BFEA5B4712768E9,
	0x1E1032911FA78984, 0x9A74ACB964E78CB3, 0x4F80F7A035DAFB04, 0x6304D09A0B3738C4,
	0x2171E64683023A08, 0x5B9B63EB9CEFF80C, 0x506AACF489889342, 0x1881AFC9A3A701D6,
	0x6503080440750644, 0xDFD395339CDBF4A7, 0xEF927DBCF00C20F2, 0x7B32F7D1E03680EC,
	0xB9FD7620E7316243, 0x05A7E8A57DB91B77, 0xB5889C6E15630A75, 0x4A750A09CE9573F7,
	0xCF464CEC899A2F8A, 0xF538639CE705B824, 0x3C79A0FF5580EF7F, 0xEDE6C87F8477609D,
	0x799E81F05BC93F31, 0x86536B8CF3428A8C, 0x97D7374C60087B73, 0xA246637CFF328532,
	0x043FCAE60CC0EBA0, 0x920E449535DD359E, 0x70EB093B15B290CC, 0x73A1921916591CBD,
	0x56436C9FE1A1AA8D, 0xEFAC4B70633B8F81, 0xBB215798D45DF7AF, 0x45F20042F24F1768,
	0x930F80F4E8EB7462, 0xFF6712FFCFD75EA1, 0xAE623FD67468AA70, 0xDD2C5BC84BC8D8FC,
	0x7EED120D54CF2DD9, 0x22FE545401165F1C, 0xC91800E98FB99929, 0x808BD68E6AC10365,
	0xDEC468145B7605F6, 0x1BEDE3A3AEF53302, 0x43539603D6C55602, 0xAA969B5C691CCB7A,
	0xA87832D392EFEE56, 0x65942C7B3C7E11AE, 0xDED2D633CAD004F6, 0x21F08570F420E565,
	0xB415938D7DA94E3C, 0x91B859E59ECB6350, 0x10CFF333E0ED804A, 0x28AED140BE0BB7DD,
	0xC5CC1D89724FA456, 0x5648F680F11A2741, 0x2D255069F0B7DAB3, 0x9BC5A38EF729ABD4,
	0xEF2F054308F6A2BC, 0xAF2042F5CC5C2858, 0x480412BAB7F5BE2A, 0xAEF3AF4A563DFE43,
	0x19AFE59AE451497F, 0x52593803DFF1E840, 0xF4F076E65F2CE6F0, 0x11379625747D5AF3,
	0xBCE5D2248682C115, 0x9DA4243DE836994F, 0x066F70B33FE09017, 0x4DC4DE189B671A1C,
	0x51039AB7712457C3, 0xC07A3F80C31FB4B4, 0xB46EE9C5E64A6E7C, 0xB3819A42ABE61C87,
	0x21A007933A522A20, 0x2DF16F761598AA4F, 0x763C4A1371B368FD, 0xF793C46702E086A0,
	0xD7288E012AEB8D31, 0xDE336A2A4BC1C44B, 0x0BF692B38D079F23, 0x2C604A7A177326B3,
	0x4850E73E03EB6064, 0xCFC447F1E53C8E1B, 0xB05CA3F564268D99, 0x9AE182C8BC9474E8,
	0xA4FC4BD4FC5558CA, 0xE755178D58FC4E76, 0x69B97DB1A4C03DFE, 0xF9B5B7C4ACC67C96,
	0xFC6A82D64B8655FB, 0x9C684CB6C4D24417, 0x8EC97D2917456ED0, 0x6703DF9D2924E97E,
	0xC547F57E42A7444E, 0x78E37644E7CAD29E, 0xFE9A44E9362F05FA, 0x08BD35CC38336615,
	0x9315E5EB3A129ACE, 0x94061B871E04DF75, 0xDF1D9F9D784BA010, 0x3BBA57B68871B59D,
	0xD2B7ADEEDED1F73F, 0xF7A255D83BC373F8, 0xD7F4F2448C0CEB81, 0xD95BE88CD210FFA7,
	0x336F52F8FF4728E7, 0xA74049DAC312AC71, 0xA2F61BB6E437FDB5, 0x4F2A5CB07F6A35B3,
	0x87D380BDA5BF7859, 0x16B9F7E06C453A21, 0x7BA2484C8A0FD54E, 0xF3A678CAD9A2E38C,
	0x39B0BF7DDE437BA2, 0xFCAF55C1BF8A4424, 0x18FCF680573FA594, 0x4C0563B89F495AC3,
	0x40E087931A00930D, 0x8CFFA9412EB642C1, 0x68CA39053261169F, 0x7A1EE967D27579E2,
	0x9D1D60E5076F5B6F, 0x3810E399B6F65BA2, 0x32095B6D4AB5F9B1, 0x35CAB62109DD038A,
	0xA90B24499FCFAFB1, 0x77A225A07CC2C6BD, 0x513E5E634C70E331, 0x4361C0CA3F692F12,
	0xD941ACA44B20A45B, 0x528F7C8602C5807B, 0x52AB92BEB9613989, 0x9D1DFA2EFC557F73,
	0x722FF175F572C348, 0x1D1260A51107FE97, 0x7A249A57EC0C9BA2, 0x04208FE9E8F7F2D6,
	0x5A110C6058B920A0, 0x0CD9A497658A5698, 0x56FD23C8F9715A4C, 0x284C847B9D887AAE,
	0x04FEABFBBDB619CB, 0x742E1E651C60BA83, 0x9A9632E65904AD3C, 0x881B82A13B51B9E2,
	0x506E6744CD974924, 0xB0183DB56FFC6A79, 0x0ED9B915C66ED37E, 0x5E11E86D5873D484,
	0xF678647E3519AC6E, 0x1B85D488D0F20CC5, 0xDAB9FE6525D89021, 0x0D151D86ADB73615,
	0xA865A54EDCC0F019, 0x93C42566AEF98FFB, 0x99E7AFEABE000731, 0x48CBFF086DDF285A,
	0x7F9B6AF1EBF78BAF, 0x58627E1A149BBA21, 0x2CD16E2ABD791E33, 0xD363EFF5F0977996,
	0x0CE2A38C344A6EED, 0x1A804AADB9CFA741, 0x907F30421D78C5DE, 0x501F65EDB3034D07,
	0x37624AE5A48FA6E9, 0x957BAF61700CFF4E, 0x3A6C27934E31188A, 0xD49503536ABCA345,
	0x088E049589C432E0, 0xF943AEE7FEBF21B8, 0x6C3B8E3E336139D3, 0x364F6FFA464EE52E,
	0xD60F6DCEDC314222, 0x56963B0DCA418FC0, 0x16F50EDF91E513AF, 0xEF1955914B609F93,
	0x565601C0364E3228, 0xECB53939887E8175, 0xBAC7A9A18531294B, 0xB344C470397BBA52,
	0x65D34954DAF3CEBD, 0xB4B81B3FA97511E2, 0xB422061193D6F6A7, 0x071582401C38434D,
	0x7A13F18BBEDC4FF5, 0xBC4097B116C524D2, 0x59B97885E2F2EA28, 0x99170A5DC3115544,
	0x6F423357E7C6A9F9, 0x325928EE6E6F8794, 0xD0E4366228B03343, 0x565C31F7DE89EA27,
	0x30F5611484119414, 0xD873DB391292ED4F, 0x7BD94E1D8E17DEBC, 0xC7D9F16864A76E94,
	0x947AE053EE56E63C, 0xC8C93882F9475F5F, 0x3A9BF55BA91F81CA, 0xD9A11FBB3D9808E4,
	0x0FD22063EDC29FCA, 0xB3F256D8ACA0B0B9, 0xB03031A8B4516E84, 0x35DD37D5871448AF,
	0xE9F6082B05542E4E, 0xEBFAFA33D7254B59, 0x9255ABB50D532280, 0xB9AB4CE57F2D34F3,
	0x693501D628297551, 0xC62C58F97DD949BF, 0xCD454F8F19C5126A, 0xBBE83F4ECC2BDECB,
	0xDC842B7E2819E230, 0xBA89142E007503B8, 0xA3BC941D0A5061CB, 0xE9F6760E32CD8021,
	0x09C7E552BC76492F, 0x852F54934DA55CC9, 0x8107FCCF064FCF56, 0x098954D51FFF6580,
	0x23B70EDB1955C4BF, 0xC330DE426430F69D, 0x4715ED43E8A45C0A, 0xA8D7E4DAB780A08D,
	0x0572B974F03CE0BB, 0xB57D2E985E1419C7, 0xE8D9ECBE2CF3D73F, 0x2FE4B17170E59750,
	0x11317BA87905E790, 0x7FBF21EC8A1F45EC, 0x1725CABFCB045B00, 0x964E915CD5E2B207,
	0x3E2B8BCBF016D66D, 0xBE7444E39328A0AC, 0xF85B2B4FBCDE44B7, 0x49353FEA39BA63B1,
	0x1DD01AAFCD53486A, 0x1FCA8A92FD719F85, 0xFC7C95D827357AFA, 0x18A6A990C8B35EBD,
	0xCCCB7005C6B9C28D, 0x3BDBB92C43B17F26, 0xAA70B5B4F89695A2, 0xE94C39A54A98307F,
	0xB7A0B174CFF6F36E, 0xD4DBA84729AF48AD, 0x2E18BC1AD9704A68, 0x2DE0966DAF2F8B1C,
	0xB9C11D5B1E43A07E, 0x64972D68DEE33360, 0x94628D38D0C20584, 0xDBC0D2B6AB90A559,
	0xD2733C4335C6A72F, 0x7E75D99D94A70F4D, 0x6CED1983376FA72B, 0x97FCAACBF030BC24,
	0x7B77497B32503B12, 0x8547EDDFB81CCB94, 0x79999CDFF70902CB, 0xCFFE1939438E9B24,
	0x829626E3892D95D7, 0x92FAE24291F2B3F1, 0x63E22C147B9C3403, 0xC678B6D860284A1C,
	0x5873888850659AE7, 0x0981DCD296A8736D, 0x9F65789A6509A440, 0x9FF38FED72E9052F,
	0xE479EE5B9930578C, 0xE7F28ECD2D49EECD, 0x56C074A581EA17FE, 0x5544F7D774B14AEF,
	0x7B3F0195FC6F290F, 0x12153635B2C0CF57, 0x7F5126DBBA5E0CA7, 0x7A76956C3EAFB413,
	0x3D5774A11D31AB39, 0x8A1B083821F40CB4, 0x7B4A38E32537DF62, 0x950113646D1D6E03,
	0x4DA8979A0041E8A9, 0x3BC36E078F7515D7, 0x5D0A12F27AD310D1, 0x7F9D1A2E1EBE1327,
	0xDA3A361B1C5157B1, 0xDCDD7D20903D0C25, 0x36833336D068F707, 0xCE68341F79893389,
	0xAB9090168DD05F34, 0x43954B3252DC25E5, 0xB438C2B67F98E5E9, 0x10DCD78E3851A492,
	0xDBC27AB5447822BF, 0x9B3CDB65F82CA382, 0xB67B7896167B4C84, 0xBFCED1B0048EAC50,
	0xA9119B60369FFEBD, 0x1FFF7AC80904BF45, 0xAC12FB171817EEE7, 0xAF08DA9177DDA93D,
	0x1B0CAB936E65C744, 0xB559EB1D04E5E932, 0xC37B45B3F8D6F2BA, 0xC3A9DC228CAAC9E9,
	0xF3B8B6675A6507FF, 0x9FC477DE4ED681DA, 0x67378D8ECCEF96CB, 0x6DD856D94D259236,
	0xA319CE15B0B4DB31, 0x073973751F12DD5E, 0x8A8E849EB32781A5, 0xE1925C71285279F5,
	0x74C04BF1790C0EFE, 0x4DDA48153C94938A, 0x9D266D6A1CC0542C, 0x7440FB816508C4FE,
	0x13328503DF48229F, 0xD6BF7BAEE43CAC40, 0x4838D65F6EF6748F, 0x1E152328F3318DEA,
	0x8F8419A348F296BF, 0x72C8834A5957B511, 0xD7A023A73260B45C, 0x94EBC8ABCFB56DAE,
	0x9FC10D0F989993E0, 0xDE68A2355B93CAE6, 0xA44CFE79AE538BBE, 0x9D1D84FCCE371425,
	0x51D2B1AB2DDFB636, 0x2FD7E4B9E72CD38C, 0x65CA5B96B7552210, 0xDD69A0D8AB3B546D,
	0x604D51B25FBF70E2, 0x73AA8A564FB7AC9E, 0x1A8C1E992B941148, 0xAAC40A2703D9BEA0,
	0x764DBEAE7FA4F3A6, 0x1E99B96E70A9BE8B, 0x2C5E9DEB57EF4743, 0x3A938FEE32D29981,
	0x26E6DB8FFDF5ADFE, 0x469356C504EC9F9D, 0xC8763C5B08D1908C, 0x3F6C6AF859D80055,
	0x7F7CC39420A3A545, 0x9BFB227EBDF4C5CE, 0x89039D79D6FC5C5C, 0x8FE88B57305E2AB6,
	0xA09E8C8C35AB96DE, 0xFA7E393983325753, 0xD6B6D0ECC617C699, 0xDFEA21EA9E7557E3,
	0xB67C1FA481680AF8, 0xCA9C07DA4CAA66C5, 0x28EAB35F70278755, 0xC5D2FFAC6BD7E287,
	0x7A1E8286BBBF6A01, 0xAA0A84E9A1DBD7FC, 0x941F20AA5DE5E482, 0x03BD25286E59E963,
	0x66B39C8408B54EC7, 0x8DACAB7B5C0AA1F5, 0xDA3C54765D57D4CE, 0xBD0EB0B9A0CC63EF,
	0x66C1A2A1A60CD889, 0x3BDA4800B95A88DD, 0x03B6539DC3E1AE95, 0x72B1B439FE7F7A2D,
	0x42BA4AAA2A5A0F4C, 0x5ACE6B71A6E2C817, 0x5856FCCF7DA80BA1, 0xA02E88AE09E69A13,
	0x4EED8ACC83E04984, 0x5D0DDD4E58E4E69D, 0x8BC529B1B69AB4CE, 0xECE66CDD42DBBA0D,
	0x44D7B75A6E3ECE83, 0xCBFF5ED52B0C9F9E, 0x183E1D3D75ED8BBB, 0x85E2FF8B39B26476,
	0xDCAD5CA583E2B4F1, 0x10A738ADCA28EECC, 0xCF464E04411D0D76, 0x40D7022A45548AC9,
	0x515E9B8C7FA8AED6, 0x1B8E1BF1CE2FB069, 0x92BA2B7B836ABAEB, 0x7C18B5DCD7F8EFBE,
	0x54F57A3DC3E79721, 0x73BD154C0C9CBCC1, 0x00A359E59D6B1D1E, 0x9E85BAA0FFBA3CD4,
	0xB67F7B22568B6CE8, 0xDF570A0A47A9DBEE, 0x6C2190B4BAB5F9C6, 0x32DDD0AB7BB04B8C,
	0x78FB5F1EF91D2D14, 0xAB62FC8A53F5A2D6, 0xBD5DFB2E278A4AAE, 0x3ECB6D0F0CE6E0C7,
	0x3A2B5A4E611F7D5C, 0xCE7AD1055B5F13D5, 0xFB15B0C82964E5B8, 0x3A2A0C689D6BA6C2,
	0xEBAB3E4B6D3E1CFE, 0x25B09F52A0C62C64, 0x3F53ACA68C944A33, 0xF39D4211A4817C17,
	0xC1F5E29A7A4EAC4F, 0x0B9ED2D0CFBB3E55, 0x263ADDE1D1E06C09, 0x16E1C08125F12C52,
	0x7F9ED86C1ECC2A0B, 0x9DBE82E6D5C13B7A, 0x76E97EC76DC9FC8F, 0x2AA1FDB565F056F3,
	0xD973E19C1A94BC9F, 0x5C496C64D3B4E8F8, 0xF63E7B43AEC40AAC, 0x0E0D7F44DAF3F8B2,
	0xC5D15E2C77FE4C5E, 0x17F37F8FCE251F26, 0x92A00C9B3A70E1AB, 0x0AD4E540D9CE0B5D,
	0x73F7BBF4E1C05246, 0x8DBAF2D78B4106CE, 0x33F8E5D23AAE028A, 0x2D4A1CB49C71A7E9,
	0x07A4D794E69A0C74, 0x9C938963E2E3A0A6, 0x5BCB1788A8C0083F, 0x2B38C5A42A49F2AC,
	0x08F0D8B7C91BCA04, 0x65F1E0F61D0F9B36, 0x8C48E87E2A2AF595, 0xE8DBF3F17DEBC68C,
	0x5A8E80E95A04BCDB, 0x72FC78D5B8D40494, 0xE1B27E1E1A1A24F1, 0xCE7B3C93E47A2A5C,
	0x4C588A2B76BE7A2D, 0x5AB0F4E2F13D3A3E, 0x6C2E7D0AED0CEB2F, 0x7F4D6F2C0B1EF7A0,
	0x9A21F4B30E3CDB91, 0xA83D1D8F48BC5C82, 0xB6492E1F37AD0B73, 0xC4556E3D26F2BA64,
	0xD2617F5B15E16955, 0xE06D807924306846, 0xEE79912751705737, 0xFC85A2456A503628,
	0x0A91B363593F1519, 0x189DC4815A8E440A, 0x26A9D59F48DD72FB, 0x34B5E6BD372CA1EC,
	0x42C1F7DB267BD0DD, 0x50CE08F9150AFFCE, 0x5EDA19171159FEBF, 0x6CE62A350009DDB0,
	0x7AF23B53EF58FCA1, 0x88FE4C71DEA82B92, 0x970A5D8FCDF75A83, 0xA5166EADBCA68974,
	0xB3227FCBAB55B865, 0xC12E90E99A04E756, 0xCF3AA207890B1647, 0xDD46B32577BA4538,
	0xEB52C44366695429, 0xF95ED5615518831A, 0x076AE67F44C7B20B, 0x1576F79D3376E0FC,
	0x463B96181691FC9C, 0x823C9B50FD114196, 0x0756B94461C50FB0, 0x662FAFB965DB29D4,
	0x22A48B5A8E47FF78, 0x652A607CA3F242C1, 0x00FDD303C946BDD9, 0x3C8123EA7B067637,
	0x5C3F9B829B279560, 0x5631140E7514FCCB, 0x4094CFFCBCD714AE, 0x857F02E867A53D4E,
	0x01C518244BD4D9C3, 0x1E54C0E3A2661CDE, 0x46FCF6ED4F6D5CBD, 0xBD4689CB8456BF29,
	0xB3A0F2FC302D8AD0, 0x790E84AC7F9CF979, 0xD4ACB4C3832B429C, 0x5CA87C955A79D6CA,
	0x71CFB0D1F3063187, 0xDD61189358B7571D, 0xEB043D415A6A9AB1, 0x9F6CA8A8AC87A54E,
	0xD9D9AF20F77229B3, 0xDFB33FDB53CB4C84, 0x6EFAF38CDA6BDE96, 0x9BF1B34EB7A9D047,
	0xC845C33BD256A6BF, 0xEF3C039556955E36, 0xCCFA2D84540C2658, 0xF78852264570BEDF,
	0xC87E88D4ADFBB952, 0x9A70EF2B5FF7C9CC, 0x23DDF3BDB7D1CBCC, 0x0BADB929D6CD1963,
	0xB4DFB6B39FB7DACD, 0x864C17B53172377F, 0xAD2F6CBD5CE5D166, 0xA63DC9542D42B623,
	0xACF180213BE3711A, 0x1055B7A2C484A7B6, 0x0EB1BF57981884AE, 0xF66F8FE0D30DDDC2,
	0x9E7F3EB38F94ABA3, 0x0CBF4319EA7E12AD, 0xC2C1C8853FFFB23A, 0xB9A0D90835618564,
	0x27692D4BB4878CD8, 0x2FC53C86AD75602A, 0x54D1EF94F0EA0C86, 0xF7B98C411B92B00B,
	0xFCA2D706C76B9489, 0x524C7168A845CD93, 0x24E4B1A0F0DF5B50, 0x9486DAB8D0AEDC5D,
	0x0040ED54CDDB4851, 0xDD023C1C06BE6F6E, 0x35B86AA4BA2C2B91, 0x529C08473CA3EA6F,
	0x5D2A6A86A0AB80ED, 0x08D7AC6321B01BE4, 0x66E9CF1CC94E9CD6, 0x72647B260DF6E717,
	0xBF1BF032E9B59AB4, 0x633E40373F9E3F5B, 0x0047846C94FC3FE2, 0xCF7CC8A96E9E37A1,
	0x2FE49A5BD1E30A15, 0x67635F44F114DEE7, 0x3D17F7F2E42E671E, 0xBBC6E573B43F0A89,
	0x7B0735F6D48BD087, 0x98F775262D61A7AC, 0xB7B246098FBF279F, 0xDC98E1585B4F9F81,
	0x053299BA0AFE9560, 0xBAC071B03B2FE456, 0xCD833A9050471042, 0x029A3FF9DF6045F0,
	0x18A131449FAFB251, 0x1117E1B43C127006, 0x6E7671898880A302, 0xF575258B2E6052CD,
	0x0039F9B8E51D07D2, 0x512BFE95F09D4D5A, 0x9C551ABB011A16F4, 0x528D044677C70CB9,
	0xD16FD65C27F2FFC8, 0x348515C6EC5E2766, 0xB830F3DCD01D838C, 0xA3E38505EB50DF08,
	0xA7A3078154CE1529, 0x1C56E440F0C72C47, 0x8A24E444E059F3B7, 0xD8C4AA13C0BEC34E,
	0x6B781074D41D1D88, 0x69D72450EEFBF4EE, 0xE819A7474A7640B7, 0x76B3667C395069D0,
	0xE149BB68153154F6, 0xA8824A3E6690EF6E, 0xD83EAC6AE842F494, 0x81AF5D22B30B03B6,
	0xD6DF0B07B80089A8, 0x2B8C3909A036901A, 0x695C5A70227A78E3, 0x42C629C6787B6A80,
	0xB05CFBEB0C632895, 0xE8960A81DC641125, 0xC18FE4C25AAC5978, 0x078228D88D1E0DBF,
	0x2B63B76031292447, 0xE9307E7B2BCDAEA7, 0xEC171512DCE10B2A, 0x6AF0BA9E8DDCAA5B,
	0x24A02DCEA0D3816C, 0x7A52066F3F86FE4D, 0xD79ED34FFD84824A, 0xE8C0902F6FB90393,
	0x7AE012AF0987FDB6, 0x780E46BA5654C9CB, 0x839E78E3EB80DBD8, 0x985DB9EF8ADF094F,
	0x0EE503763F526A56, 0xBFAF23E1E5D47D6E, 0x7F1A7D1EAC420BD6, 0x42EBEB35042256ED,
	0x5E87568DFF7D5EB3, 0x234C7E4537F712DB, 0x40FA2A3979C63631, 0xDD92248C47A1E8E6,
	0x5F964922BE757014, 0xAA74DEBBB2CC03EC, 0xAB854B4CBC2103E6, 0x2877177A479BC6C4,
	0x5380FCE9EF8ED160, 0x6E8CA6F9C77240B4, 0x6FCFE23DAE8F5885, 0x0EF8FE7AE980C321,
	0xADE1B4A9F54138DC, 0x6430D8E840C6091C, 0xDA1D0E2E9D91AB59, 0xFBB55BE4F3FDEFED,
	0xFC8EDB5683335022, 0xA6A569E1D33716B5, 0x1275F68B58D4C660, 0xD99CCA8B9DDB46F4,
	0x32C2295BB443C738, 0x55288EA240A96E0A, 0x273E4C46AE729124, 0xAD65299AAA6C1A45,
	0xB565FDD63479DA0B, 0xE9FE4B5C0ABD30FF, 0xF32B75CCCA685FD3, 0xB5A06AF05746E898,
	0x6BA7AB944DBC26F7, 0xAB0BC67C4A1638C9, 0xA5D5ADA5BB2E07DD, 0x65A5B08D2D06831E,
	0xFFDA6C2F66D6947F, 0x188A612F9FE50C3A, 0x49FE44DD19CE9DA8, 0xD599DE86E9C74F6E,
	0x36EFB5C962E362CC, 0x802A4BD7C5A1FD8A, 0x18FCE925CD7B0D64, 0x97A707EF932D00E6,
	0x9E1755B0AF6B90C4, 0xA0AC1E67DBB1211E, 0x19F83CF9DAB3F4F5, 0x972351FF8A969B05,
	0xBBD03EAE62196A1D, 0x5DB417C3C4038871, 0x5E6600CB6303ACC2, 0x1BB6B2868ACC0BE2,
	0x95DAD122BD35F1A9, 0xFBE6EA69E7A3003A, 0x72E71BB2B29642C5, 0x4CEEF5F568227F72,
	0xDC69A987F42AD339, 0x719309A7EDAB9667, 0x3D5C84DC51FB7EF3, 0xA7E49B9690860E96,
	0x86C9A09CFA3751C8, 0x9F1F286C1FECA54C, 0x87C52216DC79F782, 0xAA73D84655FE7FCC,
	0xC8A4B63B9BC70B82, 0xDDE637138B2D40AD, 0x3145485AEB44ABC9, 0xC0BDA047B60B1C15,
	0x576F92E2ADFE4F93, 0x813C970EB14D1A52, 0x78933B4CF99F4740, 0xC3CE5EC2FBF5B5E3,
	0x31D71DCE64B2C310, 0xF165B587DF898190, 0xA57E6339DD2CF3A0, 0x1EF6E6DBB1961EC9,
	0x70CC73D90BC26E24, 0xE21A6B35DF0C3AD7, 0x003A93D8B2806962, 0x1C99DED33CB890A1,
	0xCF3145DE0ADD4289, 0xD0E4427A5514FB72, 0x77C621CC9FB3A483, 0x67A34DAC4356550B,
	0xF8D626AAAF278509,
}

// NewPolyglotTable returns a ZobristTable loaded with the Polyglot book-hashing
// keys, so that position hashes are compatible with standard opening books and
// published reference values. The castling entry for a set of rights is the
// XOR of the per-right keys, which keeps incremental updates exact.
func NewPolyglotTable() *ZobristTable {
	ret := &ZobristTable{}

	kind := func(c Color, p Piece) int {
		var k int
		switch p {
		case Pawn:
			k = 0
		case Knight:
			k = 1
		case Bishop:
			k = 2
		case Rook:
			k = 3
		case Queen:
			k = 4
		case King:
			k = 5
		}
		if c == White {
			return 2*k + 1
		}
		return 2 * k
	}

	for c := ZeroColor; c < NumColors; c++ {
		for p := Pawn; p < NumPieces; p++ {
			for sq := ZeroSquare; sq < NumSquares; sq++ {
				row := int(sq) / 8
				file := 7 - int(sq)%8
				ret.pieces[c][p][sq] = ZobristHash(polyglotRandom64[64*kind(c, p)+8*row+file])
			}
		}
	}

	for mask := ZeroCastling; mask < NumCastling; mask++ {
		var h ZobristHash
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<bit) != 0 {
				h ^= ZobristHash(polyglotRandom64[768+bit])
			}
		}
		ret.castling[mask] = h
	}

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if sq.Rank() == Rank3 || sq.Rank() == Rank6 {
			file := 7 - int(sq)%8
			ret.enpassant[sq] = ZobristHash(polyglotRandom64[772+file])
		}
	}

	ret.turn[White] = ZobristHash(polyglotRandom64[780])
	return ret
}
